package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	directoryadapter "github.com/SSebia/adsite-cli/internal/adapters/render/directory"
	"github.com/SSebia/adsite-cli/internal/application"
	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAdsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Browse and manage listings",
	}

	cmd.AddCommand(
		newAdsListCmd(app),
		newAdsAddCmd(app),
		newAdsEditCmd(app),
		newAdsDeleteCmd(app),
	)

	return cmd
}

func newAdsListCmd(app *app) *cobra.Command {
	var (
		search   string
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings, filtered by title and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runDirectoryFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching listings...", app.directoryService().LoadDirectory)
			if err != nil {
				return err
			}

			filtered := make([]domain.Listing, 0, app.listings.Len())
			for listing := range app.listings.Filter(search, category) {
				filtered = append(filtered, listing)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), directoryadapter.RenderListings(filtered))
			return err
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive title substring")
	cmd.Flags().StringVar(&category, "category", "", "Exact category name (empty matches all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output raw JSON")

	return cmd
}

func newAdsAddCmd(app *app) *cobra.Command {
	var (
		title       string
		description string
		price       string
		city        string
		categoryID  int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a listing (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAdmin(cmd, app); err != nil {
				return err
			}

			parsedPrice, err := domain.ParsePrice(price)
			if err != nil {
				return err
			}

			result, err := app.listingService(cmd).Create(cmd.Context(), application.CreateListingCommand{
				Title:       title,
				Description: description,
				Price:       parsedPrice,
				City:        city,
				CategoryID:  domain.CategoryID(categoryID),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created listing #%d\n", result.Listing.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Listing title")
	cmd.Flags().StringVar(&description, "description", "", "Listing description")
	cmd.Flags().StringVar(&price, "price", "", "Price in whole units")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().Int64Var(&categoryID, "category-id", 0, "Category ID")

	return cmd
}

func newAdsEditCmd(app *app) *cobra.Command {
	var (
		title       string
		description string
		price       string
		city        string
		categoryID  int64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a listing (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(cmd, app); err != nil {
				return err
			}

			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			patch := domain.ListingPatch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("price") {
				parsedPrice, err := domain.ParsePrice(price)
				if err != nil {
					return err
				}
				patch.Price = &parsedPrice
			}
			if cmd.Flags().Changed("city") {
				patch.City = &city
			}
			if cmd.Flags().Changed("category-id") {
				cid := domain.CategoryID(categoryID)
				patch.CategoryID = &cid
			}
			if patch.IsZero() {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}

			if err := app.directoryService().LoadDirectory(cmd.Context()); err != nil {
				return err
			}

			return app.listingService(cmd).Edit(cmd.Context(), application.EditListingCommand{
				ID:    id,
				Patch: patch,
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&price, "price", "", "New price in whole units")
	cmd.Flags().StringVar(&city, "city", "", "New city")
	cmd.Flags().Int64Var(&categoryID, "category-id", 0, "New category ID")

	return cmd
}

func newAdsDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(cmd, app); err != nil {
				return err
			}

			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			return app.listingService(cmd).Delete(cmd.Context(), id)
		},
	}
}

func parseListingID(raw string) (domain.ListingID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid listing id %q", raw)
	}
	return domain.ListingID(id), nil
}

// requireAdmin gates the mutation commands in the view layer. The backend
// enforces authorization on its side as well.
func requireAdmin(cmd *cobra.Command, app *app) error {
	user, err := app.sessionStore.CurrentUser(cmd.Context())
	if err != nil {
		return fmt.Errorf("resolve session user: %w", err)
	}
	if !user.IsAdmin() {
		return fmt.Errorf("%s requires the Admin role", cmd.CommandPath())
	}
	return nil
}
