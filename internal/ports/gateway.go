package ports

import (
	"context"

	"github.com/SSebia/adsite-cli/internal/domain"
)

// Gateway is the HTTP boundary to the ads backend. Implementations attach
// the bearer credential on every call and classify any failure (transport
// error, timeout, unexpected status) as a domain.RemoteError. No call is
// ever retried.
type Gateway interface {
	FetchListings(ctx context.Context) ([]domain.Listing, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
	FetchComments(ctx context.Context, listingID domain.ListingID) ([]domain.Comment, error)

	// CreateListing submits a draft and returns the server-assigned listing.
	CreateListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error)
	// EditListing submits the merged draft for an existing listing. The
	// caller reconciles locally; the response body is not needed.
	EditListing(ctx context.Context, id domain.ListingID, draft domain.ListingDraft) error
	DeleteListing(ctx context.Context, id domain.ListingID) error

	// PostComment submits a comment's text. The local record is built from
	// the session user, not from the response.
	PostComment(ctx context.Context, listingID domain.ListingID, text string) error
}
