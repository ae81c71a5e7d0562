package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func newNetworkCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage network profiles",
	}

	cmd.AddCommand(
		newNetworkListCmd(app),
		newNetworkSetContractCmd(app),
	)

	return cmd
}

func newNetworkListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.networks.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, profile := range profiles {
				marker := " "
				if profile.Name == app.cfg.Network {
					marker = "*"
				}
				contract := profile.ContractAddress
				if contract == "" {
					contract = "(not deployed)"
				}
				_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n", marker, profile.Name, profile.Chain.ChainID.Hex(), profile.Chain.DisplayName, contract)
			}
			return w.Flush()
		},
	}
}

func newNetworkSetContractCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-contract NAME ADDRESS",
		Short: "Point a network at a deployed pet contract",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, address := args[0], args[1]
			if !common.IsHexAddress(address) {
				return fmt.Errorf("invalid contract address %q", address)
			}

			profile, err := app.networks.Get(cmd.Context(), name)
			if err != nil {
				return err
			}
			profile.ContractAddress = common.HexToAddress(address).Hex()

			if err := app.networks.Save(cmd.Context(), profile); err != nil {
				return fmt.Errorf("save network %s: %w", name, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s contract set to %s\n", name, profile.ContractAddress)
			return err
		},
	}
}
