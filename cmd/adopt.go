package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

func newAdoptCmd(app *app) *cobra.Command {
	var intent domain.AdoptionIntent
	var petID string

	cmd := &cobra.Command{
		Use:   "adopt",
		Short: "Adopt a pet as a soulbound token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			intent.EntityID = domain.EntityID(strings.TrimSpace(petID))
			intent.DisplayName = strings.TrimSpace(intent.DisplayName)
			if intent.EntityID == "" || intent.DisplayName == "" {
				return fmt.Errorf("--pet and --name must not be empty")
			}

			rt, err := app.buildRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.connect(cmd.Context()); err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}

			var result domain.TransactionResult
			label := fmt.Sprintf("Adopting %s on %s...", intent.DisplayName, rt.profile.Chain.DisplayName)
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, rt.network.TransactionURL, func(ctx context.Context, submitted func(string)) error {
				rt.orchestrator.OnSubmitted(func(_ domain.EntityID, hash string) { submitted(hash) })
				var adoptErr error
				result, adoptErr = rt.orchestrator.Adopt(ctx, intent)
				return adoptErr
			})
			if err != nil {
				return fmt.Errorf("adopt %s: %w", intent.EntityID, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Adopted %s %s (%s) as %s\n",
				intent.Glyph(), intent.DisplayName, intent.EntityID, result.ConfirmedID)
			if err != nil {
				return err
			}
			return writeReceipt(cmd.OutOrStdout(), result.ReceiptReference, rt.network.TransactionURL(result.ReceiptReference))
		},
	}

	cmd.Flags().StringVar(&petID, "pet", "", "Pet ID")
	cmd.Flags().StringVar(&intent.DisplayName, "name", "", "Pet name")
	cmd.Flags().StringVar(&intent.Category, "type", "", "Pet type (cat, dog, rabbit, ...)")
	cmd.Flags().StringVar(&intent.IconGlyph, "emoji", "", "Pet emoji (default: derived from type)")
	cmd.Flags().Int64Var(&intent.PriceMinor, "price", 0, "Listed price in minor units (adoption is always submitted with zero value)")
	_ = cmd.MarkFlagRequired("pet")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func writeReceipt(w io.Writer, reference, explorerURL string) error {
	if _, err := fmt.Fprintf(w, "Receipt: %s\n", reference); err != nil {
		return err
	}
	if explorerURL == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "Explorer: %s\n", explorerURL)
	return err
}
