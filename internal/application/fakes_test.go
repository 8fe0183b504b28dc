package application

import (
	"context"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
)

type fakeGateway struct {
	listings   []domain.Listing
	categories []domain.Category
	comments   map[domain.ListingID][]domain.Comment

	created   domain.Listing
	createErr error
	editErr   error
	deleteErr error
	postErr   error

	createCalls int
	editCalls   int
	deleteCalls int
	postCalls   int

	lastDraft domain.ListingDraft
}

var _ ports.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) FetchListings(context.Context) ([]domain.Listing, error) {
	return g.listings, nil
}

func (g *fakeGateway) FetchCategories(context.Context) ([]domain.Category, error) {
	return g.categories, nil
}

func (g *fakeGateway) FetchComments(_ context.Context, listingID domain.ListingID) ([]domain.Comment, error) {
	return g.comments[listingID], nil
}

func (g *fakeGateway) CreateListing(_ context.Context, draft domain.ListingDraft) (domain.Listing, error) {
	g.createCalls++
	g.lastDraft = draft
	if g.createErr != nil {
		return domain.Listing{}, g.createErr
	}
	return g.created, nil
}

func (g *fakeGateway) EditListing(_ context.Context, _ domain.ListingID, draft domain.ListingDraft) error {
	g.editCalls++
	g.lastDraft = draft
	return g.editErr
}

func (g *fakeGateway) DeleteListing(context.Context, domain.ListingID) error {
	g.deleteCalls++
	return g.deleteErr
}

func (g *fakeGateway) PostComment(context.Context, domain.ListingID, string) error {
	g.postCalls++
	return g.postErr
}

type notification struct {
	message  string
	severity ports.Severity
}

type fakeNotifier struct {
	notifications []notification
}

var _ ports.Notifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) Notify(message string, severity ports.Severity) {
	n.notifications = append(n.notifications, notification{message: message, severity: severity})
}

func (n *fakeNotifier) last() notification {
	if len(n.notifications) == 0 {
		return notification{}
	}
	return n.notifications[len(n.notifications)-1]
}

type fakeSession struct {
	user domain.User
	err  error
}

var _ ports.SessionProvider = (*fakeSession)(nil)

func (s *fakeSession) Token(context.Context) (string, error) {
	return "test-token", s.err
}

func (s *fakeSession) CurrentUser(context.Context) (domain.User, error) {
	return s.user, s.err
}
