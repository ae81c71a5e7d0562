package ports

import (
	"context"

	"github.com/temanbulus/nfa-cli/internal/domain"
)

type NetworkRepository interface {
	List(ctx context.Context) ([]domain.NetworkProfile, error)
	// Get fails with domain.ErrUnknownNetwork for a name that is not configured.
	Get(ctx context.Context, name string) (domain.NetworkProfile, error)
	Save(ctx context.Context, profile domain.NetworkProfile) error
}
