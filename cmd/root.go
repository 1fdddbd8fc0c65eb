package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "dream",
		Short:         "Dream AI CLI (dream): generate images and videos from prompts",
		Long:          "dream talks to the Dream AI backend: sign in, generate images and videos from text or a source image, browse your generation history, and manage your account and subscription from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(wireOptions{
				verbose: verbose,
				stderr:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPasswordCmd(app),
		newAccountCmd(app),
		newPlansCmd(app),
		newSubscriptionCmd(app),
		newGenerateCmd(app),
		newJobCmd(app),
		newHistoryCmd(app),
		newMediaCmd(app),
	)

	return rootCmd
}
