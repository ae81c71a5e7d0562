package network

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

const (
	NameSapphire = "sapphire"
	NameEthereum = "ethereum"
)

// ContractCaller is the read half of ethclient.Client.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// donationEncoder turns the clear donation fields into the bytes carried by
// makeConfidentialDonation.
type donationEncoder func(from string, intent domain.DonationIntent) (amount []byte, identity []byte)

// Network binds one chain to the pet contract deployed on it.
type Network struct {
	name     string
	chain    domain.ChainDescriptor
	contract *petContract
	caller   ContractCaller
	encode   donationEncoder
	// wallet error codes that mean "chain not registered" on a switch request
	unknownChainCodes []int
}

var _ ports.Network = (*Network)(nil)

func New(name string, chain domain.ChainDescriptor, contractAddress string, caller ContractCaller) (*Network, error) {
	switch name {
	case NameSapphire:
		return NewSapphire(chain, contractAddress, caller)
	case NameEthereum:
		return NewEthereum(chain, contractAddress, caller)
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

func newNetwork(name string, chain domain.ChainDescriptor, contractAddress string, caller ContractCaller, encode donationEncoder, unknownChainCodes []int) (*Network, error) {
	if err := chain.Validate(); err != nil {
		return nil, fmt.Errorf("%s chain: %w", name, err)
	}
	contract, err := newPetContract(contractAddress)
	if err != nil {
		return nil, err
	}

	return &Network{
		name:              name,
		chain:             chain.Clone(),
		contract:          contract,
		caller:            caller,
		encode:            encode,
		unknownChainCodes: unknownChainCodes,
	}, nil
}

func (n *Network) Name() string {
	return n.name
}

func (n *Network) RequiredChain() domain.ChainDescriptor {
	return n.chain.Clone()
}

func (n *Network) ContractAddress() string {
	return n.contract.address.Hex()
}

// UnknownChainCodes lists extra wallet error codes that this network's
// wallets use instead of 4902 for an unregistered chain.
func (n *Network) UnknownChainCodes() []int {
	return append([]int(nil), n.unknownChainCodes...)
}

func (n *Network) TransactionURL(hash string) string {
	return n.chain.TransactionURL(hash)
}

func (n *Network) AdoptionPayload(from string, intent domain.AdoptionIntent) (ports.TxPayload, error) {
	data, err := n.contract.packAdopt(intent)
	if err != nil {
		return ports.TxPayload{}, fmt.Errorf("pack adoptPetSoulbound: %w", err)
	}

	return n.payload(from, data), nil
}

func (n *Network) DonationPayload(from string, intent domain.DonationIntent) (ports.TxPayload, error) {
	amount, identity := n.encode(from, intent)
	data, err := n.contract.packDonate(intent.EntityID, amount, identity, intent.HideAmount, intent.HideIdentity)
	if err != nil {
		return ports.TxPayload{}, fmt.Errorf("pack makeConfidentialDonation: %w", err)
	}

	return n.payload(from, data), nil
}

func (n *Network) AdoptionTokenID(receipt ports.Receipt) (string, bool, error) {
	return n.contract.adoptionTokenID(receipt)
}

func (n *Network) FetchOwnedEntities(ctx context.Context, owner string) ([]domain.OwnedEntity, error) {
	if !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("invalid owner address %q", owner)
	}
	if n.caller == nil {
		return nil, fmt.Errorf("%s: no chain reader configured", n.name)
	}

	data, err := n.contract.packAdoptedPets(common.HexToAddress(owner))
	if err != nil {
		return nil, fmt.Errorf("pack getAdoptedPets: %w", err)
	}

	to := n.contract.address
	out, err := n.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call getAdoptedPets: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return n.contract.unpackAdoptedPets(out)
}

func (n *Network) payload(from string, data []byte) ports.TxPayload {
	return ports.TxPayload{
		From:     from,
		To:       n.contract.address.Hex(),
		Data:     data,
		Value:    new(big.Int),
		GasLimit: AdoptionGasLimit,
	}
}

func amountBytes(amountMinor int64) []byte {
	return []byte(strconv.FormatInt(amountMinor, 10))
}
