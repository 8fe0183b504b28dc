package application

import (
	"context"
	"fmt"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
)

// CommentService loads comment threads and posts new comments. Threads are
// fetched at most once per listing per session; posted comments are appended
// locally from the session user on confirmation.
type CommentService struct {
	gateway  ports.Gateway
	cache    *CommentCache
	session  ports.SessionProvider
	notifier ports.Notifier

	inFlight bool
}

func NewCommentService(gateway ports.Gateway, cache *CommentCache, session ports.SessionProvider, notifier ports.Notifier) *CommentService {
	return &CommentService{
		gateway:  gateway,
		cache:    cache,
		session:  session,
		notifier: notifier,
	}
}

// LoadThread populates the cache entry for listingID unless it already
// exists.
func (s *CommentService) LoadThread(ctx context.Context, listingID domain.ListingID) error {
	return s.cache.EnsureLoaded(ctx, listingID, s.gateway.FetchComments)
}

// Thread returns the loaded thread most-recent-first.
func (s *CommentService) Thread(listingID domain.ListingID) []domain.Comment {
	return s.cache.ThreadFor(listingID)
}

// Post validates and submits a comment. On confirmation the local record is
// built from the session user and appended to the thread, which must already
// be loaded. ClearInput is signaled on every submitted attempt, success or
// not; a validation failure never reaches submission and keeps the input.
func (s *CommentService) Post(ctx context.Context, cmd PostCommentCommand) (PostOutcome, error) {
	if err := s.acquire(); err != nil {
		return PostOutcome{}, err
	}
	defer s.release()

	if err := domain.ValidateComment(cmd.Text); err != nil {
		s.notifier.Notify(err.Error(), ports.SeverityWarning)
		return PostOutcome{}, err
	}

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		s.notifier.Notify("log in to post a comment", ports.SeverityWarning)
		return PostOutcome{}, fmt.Errorf("resolve session user: %w", err)
	}

	if err := s.gateway.PostComment(ctx, cmd.ListingID, cmd.Text); err != nil {
		s.notifier.Notify(remoteMessage(err, "failed to post comment"), ports.SeverityError)
		return PostOutcome{ClearInput: true}, fmt.Errorf("post comment: %w", err)
	}

	comment := domain.Comment{AuthorID: user.ID, Author: user.Name, Text: cmd.Text}
	if err := s.cache.Append(cmd.ListingID, comment); err != nil {
		return PostOutcome{ClearInput: true}, fmt.Errorf("append comment: %w", err)
	}

	s.notifier.Notify("Comment posted!", ports.SeveritySuccess)
	return PostOutcome{Comment: comment, ClearInput: true}, nil
}

func (s *CommentService) acquire() error {
	if s.inFlight {
		return domain.ErrRequestInFlight
	}
	s.inFlight = true
	return nil
}

func (s *CommentService) release() {
	s.inFlight = false
}
