package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

func newConnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet and switch it to the configured network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.buildRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			session, err := rt.connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}

			if err := writeSession(cmd.OutOrStdout(), session); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pets: %d\n", len(rt.ledger.Snapshot()))
			return err
		},
	}
}

func writeSession(w io.Writer, session domain.Session) error {
	if !session.Connected() {
		_, err := fmt.Fprintf(w, "Session: %s\n", session.Status)
		return err
	}

	_, err := fmt.Fprintf(w, "Connected: %s\nNetwork: %s (chain %d / %s)\n",
		session.AccountAddress,
		session.ActiveChain.DisplayName,
		uint64(session.ActiveChain.ChainID),
		session.ActiveChain.ChainID.Hex(),
	)
	return err
}
