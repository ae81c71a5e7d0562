package ports

import (
	"context"

	"github.com/temanbulus/nfa-cli/internal/domain"
)

// Network is one chain integration variant: the chain it requires, how the
// pet contract calls are encoded on it and how owned pets are read back.
type Network interface {
	Name() string
	RequiredChain() domain.ChainDescriptor
	AdoptionPayload(from string, intent domain.AdoptionIntent) (TxPayload, error)
	DonationPayload(from string, intent domain.DonationIntent) (TxPayload, error)
	// AdoptionTokenID extracts the minted token id. ok is false when the
	// receipt carries no adoption event.
	AdoptionTokenID(receipt Receipt) (id string, ok bool, err error)
	FetchOwnedEntities(ctx context.Context, owner string) ([]domain.OwnedEntity, error)
}
