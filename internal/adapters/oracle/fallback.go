package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

// Fallback asks primary first and fallback only when primary fails. The
// fallback answer comes back with an error wrapping ErrOracleUnavailable so
// callers keep the pet due for the primary. A cancelled caller context skips
// the fallback.
type Fallback struct {
	primary  ports.MoodOracle
	fallback ports.MoodOracle
}

var _ ports.MoodOracle = (*Fallback)(nil)

var (
	errNilPrimaryOracle  = errors.New("primary mood oracle is nil")
	errNilFallbackOracle = errors.New("fallback mood oracle is nil")
)

func NewFallback(primary ports.MoodOracle, fallback ports.MoodOracle) *Fallback {
	oracle, err := NewFallbackChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return oracle
}

func NewFallbackChecked(primary ports.MoodOracle, fallback ports.MoodOracle) (*Fallback, error) {
	if primary == nil {
		return nil, errNilPrimaryOracle
	}
	if fallback == nil {
		return nil, errNilFallbackOracle
	}

	return &Fallback{primary: primary, fallback: fallback}, nil
}

// NewAgentWithLocalFallback prefers the remote agent and answers locally
// when it cannot.
func NewAgentWithLocalFallback(agent Agent, clock ports.Clock) *Fallback {
	return NewFallback(agent, NewLocal(clock))
}

func (f *Fallback) QueryAttribute(ctx context.Context, key domain.PersonalityKey) (string, error) {
	value, err := f.primary.QueryAttribute(ctx, key)
	if err == nil {
		return value, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	fallbackValue, fallbackErr := f.fallback.QueryAttribute(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, fmt.Errorf("%w: primary oracle failed: %w", domain.ErrOracleUnavailable, err)
	}

	return "", fmt.Errorf("%w: primary oracle failed: %w; fallback oracle failed: %w", domain.ErrOracleUnavailable, err, fallbackErr)
}
