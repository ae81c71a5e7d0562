package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWalletNotInstalled   = errors.New("wallet not installed")
	ErrConnectInProgress    = errors.New("connect already in progress")
	ErrUserRejected         = errors.New("request rejected by user")
	ErrRequestPending       = errors.New("wallet request already pending")
	ErrChainUnknownToWallet = errors.New("chain unknown to wallet")
	ErrChainSwitchFailed    = errors.New("chain switch failed")
	ErrNotConnected         = errors.New("wallet not connected")
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrAlreadyOwned         = errors.New("entity already owned")
	ErrReverted             = errors.New("transaction reverted")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrTimeout              = errors.New("timed out waiting for wallet")
	ErrOracleUnavailable    = errors.New("mood oracle unavailable")
	ErrNoAccounts           = errors.New("wallet returned no accounts")
	ErrAdoptionEventMissing = errors.New("adoption event missing from receipt")
	ErrUnknownNetwork       = errors.New("unknown network")
	ErrDonationOverflow     = errors.New("donation total out of range")
)

// RevertedError carries the revert reason reported by the chain.
// It matches ErrReverted with errors.Is.
type RevertedError struct {
	Reason string
}

func (e *RevertedError) Error() string {
	if e.Reason == "" {
		return ErrReverted.Error()
	}
	return fmt.Sprintf("%s: %s", ErrReverted, e.Reason)
}

func (e *RevertedError) Is(target error) bool {
	return target == ErrReverted
}

func Reverted(reason string) error {
	return &RevertedError{Reason: reason}
}

// RevertReasonFromMessage extracts whatever follows "execution reverted" in
// a node or wallet error message. It returns "" when there is no marker.
func RevertReasonFromMessage(msg string) string {
	const marker = "execution reverted"
	i := strings.Index(strings.ToLower(msg), marker)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(msg[i+len(marker):], ": "))
}
