package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultConfirmTimeout = 2 * time.Minute
	DefaultPollInterval   = 2 * time.Second
	availabilityTimeout   = 3 * time.Second
)

type Options struct {
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	// UnknownChainCodes are extra error codes treated like 4902 on a switch.
	UnknownChainCodes []int
}

// Provider is a WalletProvider backed by a JSON-RPC wallet bridge that
// accepts the EIP-1193 request methods (eth_requestAccounts,
// wallet_switchEthereumChain, eth_sendTransaction, ...).
type Provider struct {
	client *gethrpc.Client
	eth    *ethclient.Client
	opts   Options
	logger *zap.Logger
}

var _ ports.WalletProvider = (*Provider)(nil)

func Dial(ctx context.Context, endpoint string, opts Options, logger *zap.Logger) (*Provider, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("wallet endpoint is required")
	}

	client, err := gethrpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial wallet bridge: %w", err)
	}

	return New(client, opts, logger), nil
}

func New(client *gethrpc.Client, opts Options, logger *zap.Logger) *Provider {
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = DefaultConfirmTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		client: client,
		eth:    ethclient.NewClient(client),
		opts:   opts,
		logger: logger,
	}
}

func (p *Provider) Close() {
	p.client.Close()
}

// IsAvailable reports whether the bridge answers at all.
func (p *Provider) IsAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), availabilityTimeout)
	defer cancel()

	var chainID hexutil.Uint64
	if err := p.client.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		p.logger.Debug("wallet bridge unreachable", zap.Error(err))
		return false
	}
	return true
}

func (p *Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, classify("eth_requestAccounts", err)
	}
	return accounts, nil
}

func (p *Provider) AuthorizedAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, classify("eth_accounts", err)
	}
	return accounts, nil
}

func (p *Provider) ActiveChainID(ctx context.Context) (domain.ChainID, error) {
	var chainID hexutil.Uint64
	if err := p.client.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		return 0, classify("eth_chainId", err)
	}
	return domain.ChainID(chainID), nil
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

func (p *Provider) RequestChainSwitch(ctx context.Context, chainID domain.ChainID) error {
	err := p.client.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: chainID.Hex()})
	return classify("wallet_switchEthereumChain", err, p.opts.UnknownChainCodes...)
}

type nativeCurrencyParams struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type addChainParams struct {
	ChainID           string               `json:"chainId"`
	ChainName         string               `json:"chainName"`
	NativeCurrency    nativeCurrencyParams `json:"nativeCurrency"`
	RPCURLs           []string             `json:"rpcUrls"`
	BlockExplorerURLs []string             `json:"blockExplorerUrls,omitempty"`
}

func (p *Provider) RequestChainRegistration(ctx context.Context, chain domain.ChainDescriptor) error {
	params := addChainParams{
		ChainID:   chain.ChainID.Hex(),
		ChainName: chain.DisplayName,
		NativeCurrency: nativeCurrencyParams{
			Name:     chain.NativeCurrency.Name,
			Symbol:   chain.NativeCurrency.Symbol,
			Decimals: chain.NativeCurrency.Decimals,
		},
		RPCURLs:           chain.RPCEndpoints,
		BlockExplorerURLs: chain.ExplorerEndpoints,
	}

	err := p.client.CallContext(ctx, nil, "wallet_addEthereumChain", params)
	return classify("wallet_addEthereumChain", err)
}

type sendTxArgs struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Data  hexutil.Bytes  `json:"data,omitempty"`
	Value *hexutil.Big   `json:"value,omitempty"`
	Gas   hexutil.Uint64 `json:"gas,omitempty"`
}

func (p *Provider) SendTransaction(ctx context.Context, payload ports.TxPayload) (ports.TxHandle, error) {
	args := sendTxArgs{
		From: payload.From,
		To:   payload.To,
		Data: payload.Data,
		Gas:  hexutil.Uint64(payload.GasLimit),
	}
	if payload.Value != nil {
		args.Value = (*hexutil.Big)(payload.Value)
	}

	var hash common.Hash
	if err := p.client.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return ports.TxHandle{}, classify("eth_sendTransaction", err)
	}

	p.logger.Debug("transaction sent", zap.String("tx", hash.Hex()))
	return ports.TxHandle{Hash: hash.Hex()}, nil
}

// AwaitConfirmation polls for the receipt until it is mined or the confirm
// timeout passes. A failed status is reported as a revert.
func (p *Provider) AwaitConfirmation(ctx context.Context, handle ports.TxHandle) (ports.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.ConfirmTimeout)
	defer cancel()

	hash := common.HexToHash(handle.Hash)
	ticker := time.NewTicker(p.opts.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := p.eth.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return ports.Receipt{}, fmt.Errorf("transaction %s: %w", handle.Hash, domain.Reverted(""))
			}
			return toReceipt(receipt), nil
		case !errors.Is(err, ethereum.NotFound):
			return ports.Receipt{}, classify("eth_getTransactionReceipt", err)
		}

		select {
		case <-ctx.Done():
			return ports.Receipt{}, classify("await receipt", ctx.Err())
		case <-ticker.C:
		}
	}
}

func toReceipt(receipt *types.Receipt) ports.Receipt {
	out := ports.Receipt{
		TxHash: receipt.TxHash.Hex(),
		Logs:   make([]ports.ReceiptLog, 0, len(receipt.Logs)),
	}
	if receipt.BlockNumber != nil {
		out.BlockNumber = receipt.BlockNumber.Uint64()
	}
	for _, log := range receipt.Logs {
		topics := make([]string, 0, len(log.Topics))
		for _, topic := range log.Topics {
			topics = append(topics, topic.Hex())
		}
		out.Logs = append(out.Logs, ports.ReceiptLog{
			Address: log.Address.Hex(),
			Topics:  topics,
			Data:    log.Data,
		})
	}
	return out
}
