package ports

import (
	"context"

	"github.com/temanbulus/nfa-cli/internal/domain"
)

type MoodOracle interface {
	// QueryAttribute fails with domain.ErrOracleUnavailable when the oracle cannot answer.
	// A non-empty value returned alongside that error is a substitute answer
	// that must not count as a refresh.
	QueryAttribute(ctx context.Context, key domain.PersonalityKey) (string, error)
}
