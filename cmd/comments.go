package cmd

import (
	"fmt"
	"strings"

	directoryadapter "github.com/SSebia/adsite-cli/internal/adapters/render/directory"
	"github.com/SSebia/adsite-cli/internal/application"
	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCommentsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and post listing comments",
	}

	cmd.AddCommand(
		newCommentsListCmd(app),
		newCommentsPostCmd(app),
	)

	return cmd
}

func newCommentsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <ad-id>",
		Short: "Show a listing's comment thread, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}

			err = runDirectoryFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching listings...", app.directoryService().LoadDirectory)
			if err != nil {
				return err
			}

			listing, ok := app.listings.Get(id)
			if !ok {
				return fmt.Errorf("listing %d: %w", id, domain.ErrListingNotFound)
			}

			service := app.commentService(cmd)
			if err := service.LoadThread(cmd.Context(), id); err != nil {
				return fmt.Errorf("load comment thread: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), directoryadapter.RenderThread(listing, service.Thread(id)))
			return err
		},
	}
}

func newCommentsPostCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post <ad-id> <text>...",
		Short: "Post a comment on a listing",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingID(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")

			service := app.commentService(cmd)
			if err := service.LoadThread(cmd.Context(), id); err != nil {
				return fmt.Errorf("load comment thread: %w", err)
			}

			_, err = service.Post(cmd.Context(), application.PostCommentCommand{
				ListingID: id,
				Text:      text,
			})
			return err
		},
	}
}
