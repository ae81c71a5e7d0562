package oracle

import (
	"context"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

// Local answers from the binary mood policy without leaving the process.
type Local struct {
	clock ports.Clock
}

var _ ports.MoodOracle = (*Local)(nil)

func NewLocal(clock ports.Clock) *Local {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Local{clock: clock}
}

func (l *Local) QueryAttribute(ctx context.Context, key domain.PersonalityKey) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return domain.MoodFor(key, l.clock.Now()), nil
}
