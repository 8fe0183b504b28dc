package application

import (
	"context"
	"fmt"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
)

// ListingService runs the three guarded listing mutations. Each follows the
// same shape: validate, submit, reconcile the local store on confirmation.
// A failed submission leaves local state untouched; there is no optimistic
// application and therefore nothing to roll back.
type ListingService struct {
	gateway    ports.Gateway
	listings   *ListingStore
	categories *CategoryStore
	notifier   ports.Notifier

	// One outstanding request at a time; a second invocation while a
	// submission is in flight is rejected instead of racing it.
	inFlight bool
}

func NewListingService(gateway ports.Gateway, listings *ListingStore, categories *CategoryStore, notifier ports.Notifier) *ListingService {
	return &ListingService{
		gateway:    gateway,
		listings:   listings,
		categories: categories,
		notifier:   notifier,
	}
}

func (s *ListingService) acquire() error {
	if s.inFlight {
		return domain.ErrRequestInFlight
	}
	s.inFlight = true
	return nil
}

func (s *ListingService) release() {
	s.inFlight = false
}

// Create validates the command, submits it, and on a confirmed creation
// inserts the server-returned listing and signals a form clear.
func (s *ListingService) Create(ctx context.Context, cmd CreateListingCommand) (CreateResult, error) {
	if err := s.acquire(); err != nil {
		return CreateResult{}, err
	}
	defer s.release()

	if err := domain.ValidateDraft(cmd.draft()); err != nil {
		s.notifier.Notify(err.Error(), ports.SeverityWarning)
		return CreateResult{}, err
	}

	listing, err := s.gateway.CreateListing(ctx, cmd.draft())
	if err != nil {
		s.notifier.Notify(remoteMessage(err, "failed to add listing"), ports.SeverityError)
		return CreateResult{}, fmt.Errorf("create listing: %w", err)
	}

	s.listings.Insert(listing)
	s.notifier.Notify("Listing added!", ports.SeveritySuccess)
	return CreateResult{Listing: listing, ClearForm: true}, nil
}

// Edit merges the patch over the current record, validates the result, and
// on a confirmed update replaces the local record, re-deriving the
// denormalized category name from the category directory. On any failure
// the store and the caller's draft are untouched.
func (s *ListingService) Edit(ctx context.Context, cmd EditListingCommand) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	current, ok := s.listings.Get(cmd.ID)
	if !ok {
		s.notifier.Notify("listing not found", ports.SeverityError)
		return domain.ErrListingNotFound
	}

	draft := cmd.Patch.Apply(current)
	categoryName, ok := s.categories.NameOf(draft.CategoryID)
	if !ok {
		err := &domain.ValidationError{Kind: domain.MissingField, Message: "unknown category"}
		s.notifier.Notify(err.Error(), ports.SeverityWarning)
		return err
	}
	if err := domain.ValidateDraft(draft); err != nil {
		s.notifier.Notify(err.Error(), ports.SeverityWarning)
		return err
	}

	if err := s.gateway.EditListing(ctx, cmd.ID, draft); err != nil {
		s.notifier.Notify(remoteMessage(err, "failed to update listing"), ports.SeverityError)
		return fmt.Errorf("edit listing %d: %w", cmd.ID, err)
	}

	s.listings.Replace(cmd.ID, cmd.Patch)
	s.listings.SetCategoryName(cmd.ID, categoryName)
	s.notifier.Notify("Listing updated!", ports.SeveritySuccess)
	return nil
}

// Delete removes the listing on a confirmed no-content response. Removing
// an id the store never had is a silent no-op.
func (s *ListingService) Delete(ctx context.Context, id domain.ListingID) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if err := s.gateway.DeleteListing(ctx, id); err != nil {
		s.notifier.Notify(remoteMessage(err, "failed to delete listing"), ports.SeverityError)
		return fmt.Errorf("delete listing %d: %w", id, err)
	}

	s.listings.Remove(id)
	s.notifier.Notify("Listing deleted!", ports.SeveritySuccess)
	return nil
}

// remoteMessage keeps the two user-facing remote failure messages distinct:
// an unexpected status is the server's fault, anything else is transport.
func remoteMessage(err error, transportMessage string) string {
	if rerr, ok := domain.IsRemote(err); ok {
		if rerr.Timeout {
			return "request timed out"
		}
		if rerr.Status != 0 {
			return "server error"
		}
	}
	return transportMessage
}
