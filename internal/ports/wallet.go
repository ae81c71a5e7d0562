package ports

import (
	"context"
	"math/big"

	"github.com/temanbulus/nfa-cli/internal/domain"
)

// TxPayload is an unsigned call the wallet signs and submits.
type TxPayload struct {
	From     string
	To       string
	Data     []byte
	Value    *big.Int
	GasLimit uint64
}

type TxHandle struct {
	Hash string
}

type ReceiptLog struct {
	Address string
	Topics  []string
	Data    []byte
}

type Receipt struct {
	TxHash      string
	BlockNumber uint64
	Logs        []ReceiptLog
}

// WalletProvider is the injected signer/account source.
//
// Implementations report failures with the domain taxonomy: RequestAccounts
// fails with ErrUserRejected or ErrRequestPending, RequestChainSwitch with
// ErrChainUnknownToWallet, AwaitConfirmation with a *domain.RevertedError,
// ErrInsufficientFunds or ErrTimeout.
type WalletProvider interface {
	IsAvailable() bool
	RequestAccounts(ctx context.Context) ([]string, error)
	// AuthorizedAccounts lists accounts already granted to this client without prompting.
	AuthorizedAccounts(ctx context.Context) ([]string, error)
	ActiveChainID(ctx context.Context) (domain.ChainID, error)
	RequestChainSwitch(ctx context.Context, chainID domain.ChainID) error
	RequestChainRegistration(ctx context.Context, chain domain.ChainDescriptor) error
	SendTransaction(ctx context.Context, payload TxPayload) (TxHandle, error)
	AwaitConfirmation(ctx context.Context, handle TxHandle) (Receipt, error)
}
