package domain

import (
	"fmt"
	"strings"
)

type ChainID uint64

// Hex renders the id the way wallets expect it, e.g. 0x5aff.
func (id ChainID) Hex() string {
	return fmt.Sprintf("0x%x", uint64(id))
}

type NativeCurrency struct {
	Name     string
	Symbol   string
	Decimals int
}

// ChainDescriptor identifies one target ledger network. Treat it as immutable.
type ChainDescriptor struct {
	ChainID           ChainID
	DisplayName       string
	NativeCurrency    NativeCurrency
	RPCEndpoints      []string
	ExplorerEndpoints []string
}

func (d ChainDescriptor) Validate() error {
	if d.ChainID == 0 {
		return fmt.Errorf("chain id is required")
	}
	if strings.TrimSpace(d.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}
	if strings.TrimSpace(d.NativeCurrency.Symbol) == "" {
		return fmt.Errorf("native currency symbol is required")
	}
	if len(d.RPCEndpoints) == 0 {
		return fmt.Errorf("at least one rpc endpoint is required")
	}

	return nil
}

// Clone returns a copy that shares no slices with d.
func (d ChainDescriptor) Clone() ChainDescriptor {
	d.RPCEndpoints = append([]string(nil), d.RPCEndpoints...)
	d.ExplorerEndpoints = append([]string(nil), d.ExplorerEndpoints...)
	return d
}

func (d ChainDescriptor) PrimaryRPC() string {
	if len(d.RPCEndpoints) == 0 {
		return ""
	}
	return d.RPCEndpoints[0]
}

func (d ChainDescriptor) TransactionURL(hash string) string {
	if len(d.ExplorerEndpoints) == 0 || hash == "" {
		return ""
	}
	return strings.TrimRight(d.ExplorerEndpoints[0], "/") + "/tx/" + hash
}

var SapphireTestnet = ChainDescriptor{
	ChainID:     23295,
	DisplayName: "Oasis Sapphire Testnet",
	NativeCurrency: NativeCurrency{
		Name:     "ROSE",
		Symbol:   "ROSE",
		Decimals: 18,
	},
	RPCEndpoints:      []string{"https://testnet.sapphire.oasis.dev"},
	ExplorerEndpoints: []string{"https://explorer.oasis.io/testnet/sapphire"},
}

var EthereumGoerli = ChainDescriptor{
	ChainID:     5,
	DisplayName: "Ethereum Goerli Testnet",
	NativeCurrency: NativeCurrency{
		Name:     "Goerli ETH",
		Symbol:   "gETH",
		Decimals: 18,
	},
	RPCEndpoints:      []string{"https://rpc.ankr.com/eth_goerli"},
	ExplorerEndpoints: []string{"https://goerli.etherscan.io"},
}

// NetworkProfile is a chain plus the pet contract deployed on it.
type NetworkProfile struct {
	Name            string
	Chain           ChainDescriptor
	ContractAddress string
}

func (p NetworkProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("network name is required")
	}
	if err := p.Chain.Validate(); err != nil {
		return fmt.Errorf("network %s: %w", p.Name, err)
	}
	return nil
}

// DefaultNetworkProfiles are used when no networks file exists. The
// Ethereum contract has no public deployment and must be configured.
func DefaultNetworkProfiles() []NetworkProfile {
	return []NetworkProfile{
		{Name: "sapphire", Chain: SapphireTestnet.Clone(), ContractAddress: "0x1234567890123456789012345678901234567890"},
		{Name: "ethereum", Chain: EthereumGoerli.Clone()},
	}
}
