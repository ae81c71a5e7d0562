package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/temanbulus/nfa-cli/internal/adapters/events"
	"github.com/temanbulus/nfa-cli/internal/adapters/network"
	"github.com/temanbulus/nfa-cli/internal/adapters/oracle"
	"github.com/temanbulus/nfa-cli/internal/adapters/render/room"
	tomlrepo "github.com/temanbulus/nfa-cli/internal/adapters/repo/toml"
	walletrpc "github.com/temanbulus/nfa-cli/internal/adapters/wallet/rpc"
	"github.com/temanbulus/nfa-cli/internal/application"
	"github.com/temanbulus/nfa-cli/internal/config"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/logging"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	networks     *tomlrepo.Repository
	roomRenderer func([]domain.OwnedEntity, room.RenderOptions) (string, error)
	now          func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	networks, err := tomlrepo.NewRepository(cfg.Viper())
	if err != nil {
		return nil, fmt.Errorf("wire networks repository: %w", err)
	}

	return &app{
		cfg:          cfg,
		logger:       logger,
		networks:     networks,
		roomRenderer: room.Render,
		now:          time.Now,
	}, nil
}

// runtime is the per-command object graph. It owns the wallet and chain
// connections and must be closed.
type runtime struct {
	profile      domain.NetworkProfile
	network      *network.Network
	wallet       *walletrpc.Provider
	chain        *ethclient.Client
	bus          *events.Bus
	ledger       *application.Ledger
	sessions     *application.SessionManager
	orchestrator *application.TransactionOrchestrator
	moods        *application.MoodCache
}

func (a *app) buildRuntime(ctx context.Context) (*runtime, error) {
	profile, err := a.networks.Get(ctx, a.cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("resolve network: %w", err)
	}
	if a.cfg.Contract != "" {
		profile.ContractAddress = a.cfg.Contract
	}

	if profile.ContractAddress == "" {
		return nil, fmt.Errorf("network %s has no pet contract configured; run: nfa network set-contract %s ADDRESS", profile.Name, profile.Name)
	}

	chain, err := ethclient.DialContext(ctx, profile.Chain.PrimaryRPC())
	if err != nil {
		return nil, fmt.Errorf("dial %s rpc: %w", profile.Name, err)
	}

	petNetwork, err := network.New(profile.Name, profile.Chain, profile.ContractAddress, chain)
	if err != nil {
		chain.Close()
		return nil, fmt.Errorf("wire network: %w", err)
	}

	wallet, err := walletrpc.Dial(ctx, a.cfg.Wallet.Endpoint, walletrpc.Options{
		ConfirmTimeout:    a.cfg.Wallet.ConfirmTimeout,
		PollInterval:      a.cfg.Wallet.PollInterval,
		UnknownChainCodes: petNetwork.UnknownChainCodes(),
	}, a.logger.Named("wallet"))
	if err != nil {
		chain.Close()
		return nil, fmt.Errorf("wire wallet: %w", err)
	}

	clock := ports.SystemClock{}
	bus := events.NewBus(a.logger.Named("events"))
	ledger := application.NewLedger(bus, clock, a.logger.Named("ledger"))
	reconciler := application.NewChainReconciler(wallet, a.logger.Named("chain"))
	sessions := application.NewSessionManager(wallet, petNetwork, reconciler, ledger, bus, a.logger.Named("session"))
	orchestrator := application.NewTransactionOrchestrator(sessions, wallet, petNetwork, reconciler, ledger,
		application.OrchestratorConfig{StrictEventID: a.cfg.StrictTxID}, a.logger.Named("tx"))
	moods := application.NewMoodCache(ledger, a.moodOracle(clock), clock, a.cfg.Mood.TTL, a.cfg.Mood.Interval, a.logger.Named("mood"))

	return &runtime{
		profile:      profile,
		network:      petNetwork,
		wallet:       wallet,
		chain:        chain,
		bus:          bus,
		ledger:       ledger,
		sessions:     sessions,
		orchestrator: orchestrator,
		moods:        moods,
	}, nil
}

func (a *app) moodOracle(clock ports.Clock) ports.MoodOracle {
	if a.cfg.Oracle.Mode != config.OracleModeAgent {
		return oracle.NewLocal(clock)
	}

	return oracle.NewAgentWithLocalFallback(oracle.Agent{
		BaseURL:         a.cfg.Oracle.Endpoint,
		AppID:           a.cfg.Oracle.AppID,
		Token:           a.cfg.Oracle.Token,
		RequestTimeout:  a.cfg.Oracle.Timeout,
		VerifySignature: a.cfg.Oracle.VerifySignature,
	}, clock)
}

func (r *runtime) Close() {
	r.bus.Close()
	r.wallet.Close()
	r.chain.Close()
}

// connect reuses an existing wallet authorization when possible and only
// prompts the wallet when that fails.
func (r *runtime) connect(ctx context.Context) (domain.Session, error) {
	if r.sessions.TryRestoreSession(ctx) {
		return r.sessions.Session(), nil
	}
	return r.sessions.Connect(ctx)
}
