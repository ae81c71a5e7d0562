package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nfa",
		Short:         "nfa: adopt soulbound pets and keep them fed from your wallet",
		Long:          "nfa connects to a JSON-RPC wallet bridge, adopts soulbound pets on the configured network, sends (optionally confidential) donations and keeps each pet's mood fresh.",
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

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConnectCmd(app),
		newAdoptCmd(app),
		newDonateCmd(app),
		newPetsCmd(app),
		newWatchCmd(app),
		newConfigCmd(app),
		newNetworkCmd(app),
	)

	return rootCmd
}
