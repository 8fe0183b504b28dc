package application

import "github.com/SSebia/adsite-cli/internal/domain"

type CreateListingCommand struct {
	Title       string
	Description string
	Price       int
	City        string
	CategoryID  domain.CategoryID
}

func (c CreateListingCommand) draft() domain.ListingDraft {
	return domain.ListingDraft{
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		City:        c.City,
		CategoryID:  c.CategoryID,
	}
}

type EditListingCommand struct {
	ID    domain.ListingID
	Patch domain.ListingPatch
}

type PostCommentCommand struct {
	ListingID domain.ListingID
	Text      string
}

// CreateResult reports a confirmed creation. ClearForm tells the caller to
// reset its input fields; it is only set on success.
type CreateResult struct {
	Listing   domain.Listing
	ClearForm bool
}

// PostOutcome reports a comment submission. ClearInput is set on every
// submitted attempt, success or not, matching the behavior this client
// replaces; callers that want to preserve failed input can ignore it.
type PostOutcome struct {
	Comment    domain.Comment
	ClearInput bool
}
