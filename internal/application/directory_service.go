package application

import (
	"context"
	"fmt"

	"github.com/SSebia/adsite-cli/internal/ports"
)

// DirectoryService loads the session's listing and category directories.
// Each is fetched once per session entry; mutations reconcile the stores
// afterwards instead of refetching.
type DirectoryService struct {
	gateway    ports.Gateway
	listings   *ListingStore
	categories *CategoryStore
}

func NewDirectoryService(gateway ports.Gateway, listings *ListingStore, categories *CategoryStore) *DirectoryService {
	return &DirectoryService{
		gateway:    gateway,
		listings:   listings,
		categories: categories,
	}
}

func (s *DirectoryService) LoadDirectory(ctx context.Context) error {
	listings, err := s.gateway.FetchListings(ctx)
	if err != nil {
		return fmt.Errorf("fetch listings: %w", err)
	}
	categories, err := s.gateway.FetchCategories(ctx)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}

	s.listings.Load(listings)
	s.categories.Load(categories)
	return nil
}
