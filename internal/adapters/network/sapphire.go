package network

import (
	"github.com/temanbulus/nfa-cli/internal/domain"
)

// Sapphire wallets answer a switch to an unregistered chain with an
// internal error instead of 4902.
const sapphireUnknownChainCode = -32603

// NewSapphire targets Oasis Sapphire. Calldata is confidential there, so
// the donation fields are carried as plain bytes.
func NewSapphire(chain domain.ChainDescriptor, contractAddress string, caller ContractCaller) (*Network, error) {
	return newNetwork(NameSapphire, chain, contractAddress, caller, encodeConfidential, []int{sapphireUnknownChainCode})
}

func encodeConfidential(from string, intent domain.DonationIntent) ([]byte, []byte) {
	return amountBytes(intent.AmountMinor), []byte(from)
}
