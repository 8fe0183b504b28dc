package gateway

import "github.com/SSebia/adsite-cli/internal/domain"

type listingPayload struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	City        string          `json:"city"`
	Category    categoryPayload `json:"category"`
}

type categoryPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// commentPayload mirrors the backend's comment shape: id is the author's
// user id, not a comment id.
type commentPayload struct {
	ID       int64  `json:"id"`
	Comment  string `json:"comment"`
	Username string `json:"username"`
}

type draftPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	City        string `json:"city"`
	CategoryID  int64  `json:"catID"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

func (p listingPayload) toDomain() domain.Listing {
	return domain.Listing{
		ID:          domain.ListingID(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		City:        p.City,
		Category: domain.CategoryRef{
			ID:   domain.CategoryID(p.Category.ID),
			Name: p.Category.Name,
		},
	}
}

func listingsFromPayload(payload []listingPayload) []domain.Listing {
	listings := make([]domain.Listing, 0, len(payload))
	for _, p := range payload {
		listings = append(listings, p.toDomain())
	}
	return listings
}

func categoriesFromPayload(payload []categoryPayload) []domain.Category {
	categories := make([]domain.Category, 0, len(payload))
	for _, p := range payload {
		categories = append(categories, domain.Category{
			ID:   domain.CategoryID(p.ID),
			Name: p.Name,
		})
	}
	return categories
}

func commentsFromPayload(payload []commentPayload) []domain.Comment {
	comments := make([]domain.Comment, 0, len(payload))
	for _, p := range payload {
		comments = append(comments, domain.Comment{
			AuthorID: domain.UserID(p.ID),
			Author:   p.Username,
			Text:     p.Comment,
		})
	}
	return comments
}

func draftToPayload(draft domain.ListingDraft) draftPayload {
	return draftPayload{
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		City:        draft.City,
		CategoryID:  int64(draft.CategoryID),
	}
}
