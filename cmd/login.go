package cmd

import (
	"fmt"
	"strings"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		token    string
		userID   int64
		userName string
		roles    []string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token and user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.sessionStore.Save(cmd.Context(), ports.Session{
				Token: token,
				User: domain.User{
					ID:    domain.UserID(userID),
					Name:  userName,
					Roles: roles,
				},
			})
			if err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", userName)
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token issued by the backend")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "Session user ID")
	cmd.Flags().StringVar(&userName, "user-name", "", "Session user display name")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "Session role (repeatable)")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("user-name")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessionStore.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the session user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.sessionStore.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			roles := strings.Join(user.Roles, ", ")
			if roles == "" {
				roles = "none"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d), roles: %s\n", user.Name, user.ID, roles)
			return err
		},
	}
}
