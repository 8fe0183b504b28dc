package application

import (
	"context"

	"github.com/SSebia/adsite-cli/internal/domain"
)

// CommentCache holds per-listing comment threads, lazily loaded at most once
// per listing per session and append-only afterwards.
type CommentCache struct {
	threads map[domain.ListingID][]domain.Comment
}

func NewCommentCache() *CommentCache {
	return &CommentCache{threads: make(map[domain.ListingID][]domain.Comment)}
}

// EnsureLoaded fetches the thread for listingID unless an entry already
// exists. A second call is a no-op, so fetch runs at most once per listing.
func (c *CommentCache) EnsureLoaded(ctx context.Context, listingID domain.ListingID, fetch func(context.Context, domain.ListingID) ([]domain.Comment, error)) error {
	if _, ok := c.threads[listingID]; ok {
		return nil
	}
	comments, err := fetch(ctx, listingID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	c.threads[listingID] = comments
	return nil
}

// Append pushes a comment onto an already-loaded thread. Appending before
// EnsureLoaded is a precondition violation.
func (c *CommentCache) Append(listingID domain.ListingID, comment domain.Comment) error {
	thread, ok := c.threads[listingID]
	if !ok {
		return domain.ErrThreadNotLoaded
	}
	c.threads[listingID] = append(thread, comment)
	return nil
}

// Loaded reports whether a thread entry exists for listingID.
func (c *CommentCache) Loaded(listingID domain.ListingID) bool {
	_, ok := c.threads[listingID]
	return ok
}

// ThreadFor returns the thread most-recent-first. Insertion order is kept
// internally; reversal happens here, at view time.
func (c *CommentCache) ThreadFor(listingID domain.ListingID) []domain.Comment {
	thread := c.threads[listingID]
	out := make([]domain.Comment, len(thread))
	for i, comment := range thread {
		out[len(thread)-1-i] = comment
	}
	return out
}
