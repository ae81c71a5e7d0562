package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports/mocks"
)

type sessionRig struct {
	wallet   *mocks.MockWalletProvider
	network  *fakeNetwork
	ledger   *Ledger
	events   *recordingPublisher
	sessions *SessionManager
}

func newSessionRig(t *testing.T) *sessionRig {
	t.Helper()

	wallet := mocks.NewMockWalletProvider(t)
	network := newFakeNetwork()
	events := &recordingPublisher{}
	ledger := NewLedger(events, fixedClock{now: testNow}, nil)
	sessions := NewSessionManager(wallet, network, NewChainReconciler(wallet, nil), ledger, events, nil)

	return &sessionRig{wallet: wallet, network: network, ledger: ledger, events: events, sessions: sessions}
}

func TestSessionManagerConnectEstablishesSessionAndLoadsPets(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.network.owned = []domain.OwnedEntity{confirmedEntity("cat-1")}
	rig.wallet.EXPECT().IsAvailable().Return(true)
	rig.wallet.EXPECT().RequestAccounts(mock.Anything).Return([]string{"0xabc", "0xdef"}, nil).Once()
	rig.wallet.EXPECT().ActiveChainID(mock.Anything).Return(domain.SapphireTestnet.ChainID, nil).Once()

	session, err := rig.sessions.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Connected())
	assert.Equal(t, "0xabc", session.AccountAddress)
	require.NotNil(t, session.ActiveChain)
	assert.Equal(t, domain.SapphireTestnet.ChainID, session.ActiveChain.ChainID)

	snapshot := rig.ledger.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.EntityID("cat-1"), snapshot[0].ID)
	assert.Len(t, rig.events.ofType(domain.EventSessionChanged), 1)
}

func TestSessionManagerConnectWhileConnectingMakesNoWalletCalls(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.sessions.session.Status = domain.SessionConnecting

	_, err := rig.sessions.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrConnectInProgress)
	rig.wallet.AssertNotCalled(t, "IsAvailable")
	rig.wallet.AssertNotCalled(t, "RequestAccounts", mock.Anything)
}

func TestSessionManagerConnectWithoutWallet(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(false).Once()

	_, err := rig.sessions.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletNotInstalled)
	assert.Equal(t, domain.SessionFailed, rig.sessions.Session().Status)
}

func TestSessionManagerConnectRejectedFailsSession(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().RequestAccounts(mock.Anything).Return(nil, domain.ErrUserRejected).Once()

	_, err := rig.sessions.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrUserRejected)

	session := rig.sessions.Session()
	assert.Equal(t, domain.SessionFailed, session.Status)
	assert.Empty(t, session.AccountAddress)
	assert.Nil(t, session.ActiveChain)
	assert.False(t, rig.sessions.IsConnected())
}

func TestSessionManagerConnectWithNoAccounts(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().RequestAccounts(mock.Anything).Return([]string{}, nil).Once()

	_, err := rig.sessions.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrNoAccounts)
	assert.Equal(t, domain.SessionFailed, rig.sessions.Session().Status)
}

func TestSessionManagerConnectChainSwitchFailureClearsSession(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().RequestAccounts(mock.Anything).Return([]string{"0xabc"}, nil).Once()
	rig.wallet.EXPECT().ActiveChainID(mock.Anything).Return(domain.ChainID(1), nil).Once()
	rig.wallet.EXPECT().RequestChainSwitch(mock.Anything, domain.SapphireTestnet.ChainID).Return(domain.ErrChainUnknownToWallet).Once()
	rig.wallet.EXPECT().RequestChainRegistration(mock.Anything, domain.SapphireTestnet).Return(domain.ErrUserRejected).Once()

	_, err := rig.sessions.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrChainSwitchFailed)

	session := rig.sessions.Session()
	assert.Equal(t, domain.SessionFailed, session.Status)
	assert.Empty(t, session.AccountAddress)
	_, ok := rig.sessions.CurrentAccount()
	assert.False(t, ok)
}

func TestSessionManagerConnectSurvivesOwnedPetReadFailure(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.network.fetchErr = errors.New("rpc unavailable")
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().RequestAccounts(mock.Anything).Return([]string{"0xabc"}, nil).Once()
	rig.wallet.EXPECT().ActiveChainID(mock.Anything).Return(domain.SapphireTestnet.ChainID, nil).Once()

	session, err := rig.sessions.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Connected())
	assert.Empty(t, rig.ledger.Snapshot())
}

func TestSessionManagerTryRestoreSessionUsesExistingAuthorization(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().AuthorizedAccounts(mock.Anything).Return([]string{"0xabc"}, nil).Once()
	rig.wallet.EXPECT().ActiveChainID(mock.Anything).Return(domain.SapphireTestnet.ChainID, nil).Once()

	assert.True(t, rig.sessions.TryRestoreSession(context.Background()))
	account, ok := rig.sessions.CurrentAccount()
	require.True(t, ok)
	assert.Equal(t, "0xabc", account)
	rig.wallet.AssertNotCalled(t, "RequestAccounts", mock.Anything)
}

func TestSessionManagerTryRestoreSessionNeverSwitchesChain(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().AuthorizedAccounts(mock.Anything).Return([]string{"0xabc"}, nil).Once()
	rig.wallet.EXPECT().ActiveChainID(mock.Anything).Return(domain.ChainID(1), nil).Once()

	assert.False(t, rig.sessions.TryRestoreSession(context.Background()))
	assert.Equal(t, domain.SessionDisconnected, rig.sessions.Session().Status)
}

func TestSessionManagerTryRestoreSessionSwallowsErrors(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.wallet.EXPECT().IsAvailable().Return(true).Once()
	rig.wallet.EXPECT().AuthorizedAccounts(mock.Anything).Return(nil, errors.New("boom")).Once()

	assert.False(t, rig.sessions.TryRestoreSession(context.Background()))
}

func TestSessionManagerDisconnect(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.sessions.establish("0xabc", domain.SapphireTestnet)
	require.True(t, rig.sessions.IsConnected())

	rig.sessions.Disconnect()
	assert.Equal(t, domain.SessionDisconnected, rig.sessions.Session().Status)
	assert.False(t, rig.sessions.IsConnected())
}

func TestSessionManagerSessionReturnsCopy(t *testing.T) {
	t.Parallel()

	rig := newSessionRig(t)
	rig.sessions.establish("0xabc", domain.SapphireTestnet)

	session := rig.sessions.Session()
	session.ActiveChain.RPCEndpoints[0] = "https://tampered.example"

	assert.Equal(t, domain.SapphireTestnet.RPCEndpoints[0], rig.sessions.Session().ActiveChain.RPCEndpoints[0])
}
