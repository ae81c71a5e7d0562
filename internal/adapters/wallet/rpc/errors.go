package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

// EIP-1193 and EIP-3326 provider error codes.
const (
	codeUserRejected   = 4001
	codeUnknownChain   = 4902
	codeRequestPending = -32002
	codeExecution      = 3
)

// classify maps a wallet bridge failure onto the domain taxonomy. Errors it
// does not recognise are returned wrapped but otherwise untouched.
func classify(op string, err error, unknownChainCodes ...int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTimeout, err)
	}

	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) {
		code := rpcErr.ErrorCode()
		switch code {
		case codeUserRejected:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrUserRejected, rpcErr.Error())
		case codeRequestPending:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrRequestPending, rpcErr.Error())
		case codeUnknownChain:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrChainUnknownToWallet, rpcErr.Error())
		case codeExecution:
			return fmt.Errorf("%s: %w", op, domain.Reverted(revertReason(err)))
		}
		for _, extra := range unknownChainCodes {
			if code == extra {
				return fmt.Errorf("%s: %w: %s", op, domain.ErrChainUnknownToWallet, rpcErr.Error())
			}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInsufficientFunds, err)
	case strings.Contains(msg, "execution reverted"):
		return fmt.Errorf("%s: %w", op, domain.Reverted(revertReason(err)))
	case strings.Contains(msg, "user rejected"), strings.Contains(msg, "user denied"):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUserRejected, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// revertReason prefers the string carried in the error data, then whatever
// follows "execution reverted:" in the message.
func revertReason(err error) string {
	var dataErr gethrpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := dataErr.ErrorData().(string); ok && reason != "" && !strings.HasPrefix(reason, "0x") {
			return reason
		}
	}

	return domain.RevertReasonFromMessage(err.Error())
}
