package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

var errNegativeDonation = errors.New("donation amount must not be negative")

type OrchestratorConfig struct {
	// StrictEventID fails an adoption whose receipt has no adoption event
	// instead of deriving the id from the receipt reference.
	StrictEventID bool
}

// TransactionOrchestrator submits adoptions and donations through the wallet
// and reconciles confirmed results into the Ledger. Failed calls are never
// retried here; re-invoking with the same intent is safe.
type TransactionOrchestrator struct {
	sessions   *SessionManager
	wallet     ports.WalletProvider
	network    ports.Network
	reconciler *ChainReconciler
	ledger     *Ledger
	cfg        OrchestratorConfig
	logger     *zap.Logger

	onSubmitted func(id domain.EntityID, txHash string)
}

func NewTransactionOrchestrator(sessions *SessionManager, wallet ports.WalletProvider, network ports.Network, reconciler *ChainReconciler, ledger *Ledger, cfg OrchestratorConfig, logger *zap.Logger) *TransactionOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransactionOrchestrator{
		sessions:   sessions,
		wallet:     wallet,
		network:    network,
		reconciler: reconciler,
		ledger:     ledger,
		cfg:        cfg,
		logger:     logger,
	}
}

// OnSubmitted registers fn to be told the hash of every transaction the
// wallet accepts, before its confirmation is awaited. Set it before use.
func (o *TransactionOrchestrator) OnSubmitted(fn func(id domain.EntityID, txHash string)) {
	o.onSubmitted = fn
}

func (o *TransactionOrchestrator) submitted(id domain.EntityID, txHash string) {
	o.logger.Info("transaction submitted", zap.String("pet", string(id)), zap.String("tx", txHash))
	if o.onSubmitted != nil {
		o.onSubmitted(id, txHash)
	}
}

// Adopt reserves the pet as pending before any wallet call, so a second
// adoption of the same id is rejected while the first is in flight.
func (o *TransactionOrchestrator) Adopt(ctx context.Context, intent domain.AdoptionIntent) (domain.TransactionResult, error) {
	from, ok := o.sessions.CurrentAccount()
	if !ok {
		return domain.TransactionResult{}, domain.ErrNotConnected
	}
	if err := o.ledger.BeginAdoption(intent, ""); err != nil {
		return domain.TransactionResult{}, err
	}
	pendingRef := ""
	discard := func() {
		o.ledger.DiscardPending(intent.EntityID, pendingRef)
	}

	if err := o.reconciler.EnsureChain(ctx, o.network.RequiredChain()); err != nil {
		discard()
		return domain.TransactionResult{}, fmt.Errorf("ensure chain: %w", err)
	}

	payload, err := o.network.AdoptionPayload(from, intent)
	if err != nil {
		discard()
		return domain.TransactionResult{}, fmt.Errorf("encode adoption: %w", err)
	}
	payload.Value = new(big.Int)

	handle, err := o.wallet.SendTransaction(ctx, payload)
	if err != nil {
		discard()
		return domain.TransactionResult{}, o.failed("submit adoption", err)
	}
	if o.ledger.AttachPendingReference(intent.EntityID, pendingRef, handle.Hash) {
		pendingRef = handle.Hash
	}
	o.submitted(intent.EntityID, handle.Hash)

	receipt, err := o.wallet.AwaitConfirmation(ctx, handle)
	if err != nil {
		discard()
		return domain.TransactionResult{}, o.failed("await adoption", err)
	}

	confirmedID, err := o.confirmedID(receipt)
	if err != nil {
		discard()
		return domain.TransactionResult{}, err
	}

	result := domain.TransactionResult{
		ConfirmedID:      confirmedID,
		ReceiptReference: receiptReference(receipt, handle),
	}
	if _, err := o.ledger.MaterializeAdoption(intent, result); err != nil {
		discard()
		return domain.TransactionResult{}, fmt.Errorf("materialize adoption: %w", err)
	}

	o.logger.Info("adoption confirmed",
		zap.String("pet", string(intent.EntityID)),
		zap.String("token", confirmedID),
		zap.String("tx", result.ReceiptReference))

	return result, nil
}

// Donate forwards the privacy flags to the network encoding untouched.
// The recorded total grows by AmountMinor even though zero value is sent.
func (o *TransactionOrchestrator) Donate(ctx context.Context, intent domain.DonationIntent) (domain.TransactionResult, error) {
	from, ok := o.sessions.CurrentAccount()
	if !ok {
		return domain.TransactionResult{}, domain.ErrNotConnected
	}
	entity, ok := o.ledger.Get(intent.EntityID)
	if !ok || !entity.Confirmed() {
		return domain.TransactionResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownEntity, intent.EntityID)
	}
	if intent.AmountMinor < 0 {
		return domain.TransactionResult{}, errNegativeDonation
	}
	if _, err := entity.DonationTotalAfter(intent.AmountMinor); err != nil {
		return domain.TransactionResult{}, err
	}

	if err := o.reconciler.EnsureChain(ctx, o.network.RequiredChain()); err != nil {
		return domain.TransactionResult{}, fmt.Errorf("ensure chain: %w", err)
	}

	payload, err := o.network.DonationPayload(from, intent)
	if err != nil {
		return domain.TransactionResult{}, fmt.Errorf("encode donation: %w", err)
	}
	payload.Value = new(big.Int)

	handle, err := o.wallet.SendTransaction(ctx, payload)
	if err != nil {
		return domain.TransactionResult{}, o.failed("submit donation", err)
	}
	o.submitted(intent.EntityID, handle.Hash)

	receipt, err := o.wallet.AwaitConfirmation(ctx, handle)
	if err != nil {
		return domain.TransactionResult{}, o.failed("await donation", err)
	}

	reference := receiptReference(receipt, handle)
	if _, err := o.ledger.ApplyDonation(intent.EntityID, intent.AmountMinor); err != nil {
		return domain.TransactionResult{}, fmt.Errorf("apply donation: %w", err)
	}

	o.logger.Info("donation confirmed", zap.String("pet", string(intent.EntityID)), zap.String("tx", reference))

	return domain.TransactionResult{ConfirmedID: reference, ReceiptReference: reference}, nil
}

func (o *TransactionOrchestrator) confirmedID(receipt ports.Receipt) (string, error) {
	id, ok, err := o.network.AdoptionTokenID(receipt)
	if err != nil {
		return "", fmt.Errorf("decode adoption event: %w", err)
	}
	if ok {
		return id, nil
	}
	if o.cfg.StrictEventID {
		return "", fmt.Errorf("%w: %s", domain.ErrAdoptionEventMissing, receipt.TxHash)
	}

	o.logger.Warn("adoption event missing, deriving id from receipt", zap.String("tx", receipt.TxHash))
	return "tx-" + strings.ToLower(receipt.TxHash), nil
}

func (o *TransactionOrchestrator) failed(op string, err error) error {
	classified := classifyWalletError(err)
	o.logger.Warn("transaction failed", zap.String("op", op), zap.Error(classified))
	return fmt.Errorf("%s: %w", op, classified)
}

func receiptReference(receipt ports.Receipt, handle ports.TxHandle) string {
	if receipt.TxHash != "" {
		return receipt.TxHash
	}
	return handle.Hash
}

var walletTaxonomy = []error{
	domain.ErrUserRejected,
	domain.ErrRequestPending,
	domain.ErrReverted,
	domain.ErrInsufficientFunds,
	domain.ErrTimeout,
	domain.ErrChainSwitchFailed,
	domain.ErrChainUnknownToWallet,
}

// classifyWalletError maps untyped provider failures onto the taxonomy.
// Errors that already carry a taxonomy member pass through unchanged.
func classifyWalletError(err error) error {
	for _, known := range walletTaxonomy {
		if errors.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %w", domain.ErrInsufficientFunds, err)
	case strings.Contains(msg, "execution reverted"):
		return domain.Reverted(domain.RevertReasonFromMessage(err.Error()))
	case strings.Contains(msg, "user rejected"), strings.Contains(msg, "user denied"):
		return fmt.Errorf("%w: %w", domain.ErrUserRejected, err)
	}

	return err
}
