package network

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

// NewEthereum targets a public EVM chain. Calldata is public, so hidden
// donation fields are replaced by their keccak256 commitment.
func NewEthereum(chain domain.ChainDescriptor, contractAddress string, caller ContractCaller) (*Network, error) {
	return newNetwork(NameEthereum, chain, contractAddress, caller, encodeCommitted, nil)
}

func encodeCommitted(from string, intent domain.DonationIntent) ([]byte, []byte) {
	amount := amountBytes(intent.AmountMinor)
	identity := []byte(from)
	if intent.HideAmount {
		amount = crypto.Keccak256(amount)
	}
	if intent.HideIdentity {
		identity = crypto.Keccak256(identity)
	}
	return amount, identity
}
