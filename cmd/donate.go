package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

var errInvalidAmount = errors.New("invalid amount")

func newDonateCmd(app *app) *cobra.Command {
	var intent domain.DonationIntent
	var petID string
	var amount string

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Donate to an adopted pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			intent.EntityID = domain.EntityID(strings.TrimSpace(petID))

			rt, err := app.buildRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			currency := rt.profile.Chain.NativeCurrency
			intent.AmountMinor, err = parseAmount(amount, currency.Decimals)
			if err != nil {
				return err
			}

			if _, err := rt.connect(cmd.Context()); err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}

			var result domain.TransactionResult
			label := fmt.Sprintf("Donating %s %s to %s...", amount, currency.Symbol, intent.EntityID)
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, rt.network.TransactionURL, func(ctx context.Context, submitted func(string)) error {
				rt.orchestrator.OnSubmitted(func(_ domain.EntityID, hash string) { submitted(hash) })
				var donateErr error
				result, donateErr = rt.orchestrator.Donate(ctx, intent)
				return donateErr
			})
			if err != nil {
				return fmt.Errorf("donate to %s: %w", intent.EntityID, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Donated %s %s to %s\n", amount, currency.Symbol, intent.EntityID)
			if err != nil {
				return err
			}
			return writeReceipt(cmd.OutOrStdout(), result.ReceiptReference, rt.network.TransactionURL(result.ReceiptReference))
		},
	}

	cmd.Flags().StringVar(&petID, "pet", "", "Pet ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in whole currency units, e.g. 0.5")
	cmd.Flags().BoolVar(&intent.HideAmount, "hide-amount", false, "Keep the amount confidential")
	cmd.Flags().BoolVar(&intent.HideIdentity, "hide-identity", false, "Keep the donor identity confidential")
	_ = cmd.MarkFlagRequired("pet")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// parseAmount converts a decimal amount into minor units.
func parseAmount(amount string, decimals int) (int64, error) {
	value, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return 0, fmt.Errorf("%w: %q", errInvalidAmount, amount)
	}
	if value.Sign() < 0 {
		return 0, fmt.Errorf("%w: %q is negative", errInvalidAmount, amount)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	minor := value.Mul(value, new(big.Rat).SetInt(scale))
	if !minor.IsInt() {
		return 0, fmt.Errorf("%w: %q has more than %d decimals", errInvalidAmount, amount, decimals)
	}
	if !minor.Num().IsInt64() {
		return 0, fmt.Errorf("%w: %q is too large", errInvalidAmount, amount)
	}

	return minor.Num().Int64(), nil
}
