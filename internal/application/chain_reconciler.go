package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

type ChainReconciler struct {
	wallet ports.WalletProvider
	logger *zap.Logger
}

func NewChainReconciler(wallet ports.WalletProvider, logger *zap.Logger) *ChainReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChainReconciler{wallet: wallet, logger: logger}
}

// EnsureChain makes the wallet's active network match required. It never
// returns nil while the wallet is on another chain.
func (r *ChainReconciler) EnsureChain(ctx context.Context, required domain.ChainDescriptor) error {
	active, err := r.wallet.ActiveChainID(ctx)
	if err != nil {
		return fmt.Errorf("read active chain: %w", err)
	}
	if active == required.ChainID {
		return nil
	}

	r.logger.Info("switching wallet chain",
		zap.String("from", active.Hex()),
		zap.String("to", required.ChainID.Hex()),
		zap.String("name", required.DisplayName))

	err = r.wallet.RequestChainSwitch(ctx, required.ChainID)
	if errors.Is(err, domain.ErrChainUnknownToWallet) {
		r.logger.Info("chain unknown to wallet, registering", zap.String("chain", required.ChainID.Hex()))
		if regErr := r.wallet.RequestChainRegistration(ctx, required); regErr != nil {
			return fmt.Errorf("%w: register %s: %w", domain.ErrChainSwitchFailed, required.ChainID.Hex(), regErr)
		}
		if retryErr := r.wallet.RequestChainSwitch(ctx, required.ChainID); retryErr != nil {
			return fmt.Errorf("%w: switch to %s after registration: %w", domain.ErrChainSwitchFailed, required.ChainID.Hex(), retryErr)
		}
	} else if err != nil {
		return err
	}

	active, err = r.wallet.ActiveChainID(ctx)
	if err != nil {
		return fmt.Errorf("read active chain after switch: %w", err)
	}
	if active != required.ChainID {
		return fmt.Errorf("%w: wallet still on %s, want %s", domain.ErrChainSwitchFailed, active.Hex(), required.ChainID.Hex())
	}

	return nil
}
