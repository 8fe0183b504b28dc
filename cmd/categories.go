package cmd

import (
	"fmt"

	directoryadapter "github.com/SSebia/adsite-cli/internal/adapters/render/directory"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse listing categories",
	}

	cmd.AddCommand(newCategoriesListCmd(app))

	return cmd
}

func newCategoriesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runDirectoryFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching categories...", app.directoryService().LoadDirectory)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), directoryadapter.RenderCategories(app.categories.All()))
			return err
		},
	}
}
