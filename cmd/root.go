package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adsite",
		Short:         "AdSite: browse and manage classifieds listings from the terminal",
		Long:          "adsite is a terminal client for the AdSite classifieds backend: browse and filter listings, read and post comments, and (as an administrator) create, edit and delete listings.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAdsCmd(app),
		newCommentsCmd(app),
		newCategoriesCmd(app),
	)

	return rootCmd
}
