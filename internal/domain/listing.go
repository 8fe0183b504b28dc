package domain

import (
	"strconv"
	"strings"
)

type ListingID int64

// CategoryRef is the denormalized category carried by every listing. The
// name is re-derived from the category directory after a rename.
type CategoryRef struct {
	ID   CategoryID
	Name string
}

type Listing struct {
	ID          ListingID
	Title       string
	Description string
	Price       int
	City        string
	Category    CategoryRef
}

// ListingDraft holds the five user-supplied fields of a create or edit
// submission, before validation.
type ListingDraft struct {
	Title       string
	Description string
	Price       int
	City        string
	CategoryID  CategoryID
}

// ListingPatch is a typed partial update: only non-nil fields are applied.
// Unknown fields cannot exist here, unlike a dynamic merge.
type ListingPatch struct {
	Title       *string
	Description *string
	Price       *int
	City        *string
	CategoryID  *CategoryID
}

// IsZero reports whether the patch changes nothing.
func (p ListingPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.City == nil && p.CategoryID == nil
}

// Apply merges the patch over the listing's current fields and returns the
// resulting draft for validation.
func (p ListingPatch) Apply(l Listing) ListingDraft {
	draft := ListingDraft{
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		City:        l.City,
		CategoryID:  l.Category.ID,
	}
	if p.Title != nil {
		draft.Title = *p.Title
	}
	if p.Description != nil {
		draft.Description = *p.Description
	}
	if p.Price != nil {
		draft.Price = *p.Price
	}
	if p.City != nil {
		draft.City = *p.City
	}
	if p.CategoryID != nil {
		draft.CategoryID = *p.CategoryID
	}
	return draft
}

const (
	minFieldLength       = 3
	minDescriptionLength = 10
	minPrice             = 1
)

// ValidateDraft runs the ordered pre-submit checks and returns the first
// failure: field presence, minimum lengths, description length, price floor.
func ValidateDraft(d ListingDraft) error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" ||
		strings.TrimSpace(d.City) == "" || d.Price == 0 || d.CategoryID == 0 {
		return newValidationError(MissingField, "please fill out all fields")
	}
	if len(d.Title) < minFieldLength || len(d.Description) < minFieldLength || len(d.City) < minFieldLength {
		return newValidationError(TooShort, "title, description and city must be at least 3 characters long")
	}
	if len(d.Description) < minDescriptionLength {
		return newValidationError(DescriptionTooShort, "description must be at least 10 characters long")
	}
	if d.Price < minPrice {
		return newValidationError(InvalidPrice, "price must be at least 1")
	}
	return nil
}

// ParsePrice parses a user-supplied price string strictly. Non-numeric input
// fails with InvalidPrice instead of being coerced.
func ParsePrice(raw string) (int, error) {
	price, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError(InvalidPrice, "price must be a whole number")
	}
	return price, nil
}
