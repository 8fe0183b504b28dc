package application

import (
	"iter"
	"strings"

	"github.com/SSebia/adsite-cli/internal/domain"
)

// ListingStore is the session-local authoritative collection of listings.
// It is reconciled against server-confirmed mutations instead of refetched.
// Mutated only from the session's single goroutine of control.
type ListingStore struct {
	listings []domain.Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{}
}

// Load replaces the whole collection with the server's directory response.
func (s *ListingStore) Load(listings []domain.Listing) {
	s.listings = make([]domain.Listing, len(listings))
	copy(s.listings, listings)
}

// Insert appends a newly created listing. The server guarantees the id is
// fresh, so no duplicate check is made.
func (s *ListingStore) Insert(listing domain.Listing) {
	s.listings = append(s.listings, listing)
}

// Replace merges the patch into the listing with the given id and reports
// whether it was found. A miss mutates nothing.
func (s *ListingStore) Replace(id domain.ListingID, patch domain.ListingPatch) bool {
	for i := range s.listings {
		if s.listings[i].ID != id {
			continue
		}
		draft := patch.Apply(s.listings[i])
		s.listings[i].Title = draft.Title
		s.listings[i].Description = draft.Description
		s.listings[i].Price = draft.Price
		s.listings[i].City = draft.City
		s.listings[i].Category.ID = draft.CategoryID
		return true
	}
	return false
}

// SetCategoryName re-derives the denormalized category name on the listing
// with the given id. Used after an edit resolves the name from the category
// directory.
func (s *ListingStore) SetCategoryName(id domain.ListingID, name string) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings[i].Category.Name = name
			return
		}
	}
}

// RenameCategory applies an externally-driven category rename to every
// listing referencing it, so renames never orphan listings.
func (s *ListingStore) RenameCategory(id domain.CategoryID, name string) {
	for i := range s.listings {
		if s.listings[i].Category.ID == id {
			s.listings[i].Category.Name = name
		}
	}
}

// Remove deletes the listing with the given id. Removing an absent id is a
// no-op.
func (s *ListingStore) Remove(id domain.ListingID) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return
		}
	}
}

// Get returns the listing with the given id.
func (s *ListingStore) Get(id domain.ListingID) (domain.Listing, bool) {
	for _, listing := range s.listings {
		if listing.ID == id {
			return listing, true
		}
	}
	return domain.Listing{}, false
}

func (s *ListingStore) Len() int {
	return len(s.listings)
}

// All returns a copy of the collection in insertion order.
func (s *ListingStore) All() []domain.Listing {
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Filter yields listings whose title contains searchTerm case-insensitively
// and whose category name equals categoryName (empty matches all). The
// sequence is lazy and restartable; current state is not mutated.
func (s *ListingStore) Filter(searchTerm, categoryName string) iter.Seq[domain.Listing] {
	needle := strings.ToLower(searchTerm)
	return func(yield func(domain.Listing) bool) {
		for _, listing := range s.listings {
			if !strings.Contains(strings.ToLower(listing.Title), needle) {
				continue
			}
			if categoryName != "" && listing.Category.Name != categoryName {
				continue
			}
			if !yield(listing) {
				return
			}
		}
	}
}
