package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

type SessionManager struct {
	wallet     ports.WalletProvider
	network    ports.Network
	reconciler *ChainReconciler
	ledger     *Ledger
	events     ports.EventPublisher
	logger     *zap.Logger

	mu      sync.Mutex
	session domain.Session
}

func NewSessionManager(wallet ports.WalletProvider, network ports.Network, reconciler *ChainReconciler, ledger *Ledger, events ports.EventPublisher, logger *zap.Logger) *SessionManager {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{
		wallet:     wallet,
		network:    network,
		reconciler: reconciler,
		ledger:     ledger,
		events:     events,
		logger:     logger,
		session:    domain.Session{Status: domain.SessionDisconnected},
	}
}

// Connect runs one prompted connect attempt. Only one attempt may be in
// flight; a second caller gets ErrConnectInProgress without touching the wallet.
func (m *SessionManager) Connect(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	if m.session.Status == domain.SessionConnecting {
		m.mu.Unlock()
		return domain.Session{}, domain.ErrConnectInProgress
	}
	if !m.wallet.IsAvailable() {
		m.session = domain.Session{Status: domain.SessionFailed}
		m.mu.Unlock()
		return domain.Session{}, domain.ErrWalletNotInstalled
	}
	m.session = domain.Session{Status: domain.SessionConnecting}
	m.mu.Unlock()

	m.logger.Info("connecting wallet", zap.String("network", m.network.Name()))

	address, err := m.authorize(ctx)
	if err != nil {
		return domain.Session{}, m.fail(err)
	}

	required := m.network.RequiredChain()
	if err := m.reconciler.EnsureChain(ctx, required); err != nil {
		return domain.Session{}, m.fail(fmt.Errorf("ensure chain: %w", err))
	}

	session := m.establish(address, required)
	m.logger.Info("wallet connected",
		zap.String("address", address),
		zap.String("chain", required.ChainID.Hex()))

	m.loadOwned(ctx, address)

	return session, nil
}

// TryRestoreSession reuses an already authorized account without prompting.
// Every failure is swallowed: nobody asked to connect yet.
func (m *SessionManager) TryRestoreSession(ctx context.Context) bool {
	m.mu.Lock()
	busy := m.session.Status == domain.SessionConnecting || m.session.Status == domain.SessionConnected
	m.mu.Unlock()
	if busy || !m.wallet.IsAvailable() {
		return false
	}

	accounts, err := m.wallet.AuthorizedAccounts(ctx)
	if err != nil || len(accounts) == 0 {
		m.logger.Debug("no existing wallet authorization", zap.Error(err))
		return false
	}

	required := m.network.RequiredChain()
	active, err := m.wallet.ActiveChainID(ctx)
	if err != nil || active != required.ChainID {
		m.logger.Debug("wallet not on required chain, skipping restore",
			zap.String("active", active.Hex()),
			zap.Error(err))
		return false
	}

	m.mu.Lock()
	if m.session.Status == domain.SessionConnecting || m.session.Status == domain.SessionConnected {
		m.mu.Unlock()
		return false
	}
	m.mu.Unlock()

	m.establish(accounts[0], required)
	m.logger.Info("wallet session restored", zap.String("address", accounts[0]))
	m.loadOwned(ctx, accounts[0])

	return true
}

func (m *SessionManager) Disconnect() {
	m.mu.Lock()
	m.session = domain.Session{Status: domain.SessionDisconnected}
	m.mu.Unlock()

	m.events.Publish(domain.Event{Type: domain.EventSessionChanged, Value: string(domain.SessionDisconnected)})
}

func (m *SessionManager) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := m.session
	if session.ActiveChain != nil {
		chain := session.ActiveChain.Clone()
		session.ActiveChain = &chain
	}
	return session
}

func (m *SessionManager) CurrentAccount() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Status != domain.SessionConnected {
		return "", false
	}
	return m.session.AccountAddress, true
}

func (m *SessionManager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session.Status == domain.SessionConnected
}

func (m *SessionManager) authorize(ctx context.Context) (string, error) {
	accounts, err := m.wallet.RequestAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return "", domain.ErrNoAccounts
	}
	return accounts[0], nil
}

func (m *SessionManager) establish(address string, chain domain.ChainDescriptor) domain.Session {
	chain = chain.Clone()

	m.mu.Lock()
	m.session = domain.Session{
		Status:         domain.SessionConnected,
		AccountAddress: address,
		ActiveChain:    &chain,
	}
	m.mu.Unlock()

	m.events.Publish(domain.Event{Type: domain.EventSessionChanged, Value: string(domain.SessionConnected)})

	return m.Session()
}

func (m *SessionManager) fail(err error) error {
	m.mu.Lock()
	m.session = domain.Session{Status: domain.SessionFailed}
	m.mu.Unlock()

	m.logger.Warn("wallet connect failed", zap.Error(err))
	m.events.Publish(domain.Event{Type: domain.EventSessionChanged, Value: string(domain.SessionFailed)})

	return err
}

// loadOwned seeds the ledger. A failed read is treated as owning nothing.
func (m *SessionManager) loadOwned(ctx context.Context, address string) {
	if m.ledger == nil {
		return
	}

	entities, err := m.network.FetchOwnedEntities(ctx, address)
	if err != nil {
		m.logger.Warn("load owned pets failed", zap.String("address", address), zap.Error(err))
		entities = nil
	}
	m.ledger.Replace(entities)
}
