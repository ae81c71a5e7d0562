package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	oracleadapter "github.com/temanbulus/nfa-cli/internal/adapters/oracle"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports/mocks"
)

func newMoodRig(t *testing.T, entities ...domain.OwnedEntity) (*Ledger, *mocks.MockMoodOracle, *MoodCache) {
	t.Helper()

	ledger := NewLedger(nil, fixedClock{now: testNow}, nil)
	ledger.Replace(entities)
	oracle := mocks.NewMockMoodOracle(t)
	cache := NewMoodCache(ledger, oracle, fixedClock{now: testNow}, domain.MoodTTL, time.Hour, nil)

	return ledger, oracle, cache
}

func keyFor(id domain.EntityID) interface{} {
	return mock.MatchedBy(func(key domain.PersonalityKey) bool { return key.ID == id })
}

func TestMoodCacheRefreshesPetWithoutCachedMood(t *testing.T) {
	t.Parallel()

	ledger, oracle, cache := newMoodRig(t, confirmedEntity("cat-1"))
	oracle.EXPECT().QueryAttribute(mock.Anything, keyFor("cat-1")).Return(domain.MoodContent, nil).Once()

	require.NoError(t, cache.RefreshAll(context.Background()))

	entity, _ := ledger.Get("cat-1")
	require.NotNil(t, entity.CurrentAttribute)
	assert.Equal(t, domain.MoodContent, *entity.CurrentAttribute)
	require.NotNil(t, entity.LastAttributeRefreshAt)
	assert.Equal(t, testNow, *entity.LastAttributeRefreshAt)
}

func TestMoodCacheHonoursTTL(t *testing.T) {
	t.Parallel()

	fresh := confirmedEntity("cat-1")
	fresh.CurrentAttribute = ptrString(domain.MoodContent)
	fresh.LastAttributeRefreshAt = ptrTime(testNow.Add(-23 * time.Hour))

	stale := confirmedEntity("dog-1")
	stale.CurrentAttribute = ptrString(domain.MoodContent)
	stale.LastAttributeRefreshAt = ptrTime(testNow.Add(-24 * time.Hour))

	ledger, oracle, cache := newMoodRig(t, fresh, stale)
	oracle.EXPECT().QueryAttribute(mock.Anything, keyFor("dog-1")).Return(domain.MoodHungry, nil).Once()

	require.NoError(t, cache.RefreshAll(context.Background()))
	oracle.AssertNotCalled(t, "QueryAttribute", mock.Anything, keyFor("cat-1"))

	entity, _ := ledger.Get("cat-1")
	assert.Equal(t, domain.MoodContent, *entity.CurrentAttribute)
	entity, _ = ledger.Get("dog-1")
	assert.Equal(t, domain.MoodHungry, *entity.CurrentAttribute)
}

func TestMoodCacheFallbackIsRetriedNextPass(t *testing.T) {
	t.Parallel()

	ledger, oracle, cache := newMoodRig(t, confirmedEntity("cat-1"))
	oracle.EXPECT().QueryAttribute(mock.Anything, mock.Anything).Return("", domain.ErrOracleUnavailable).Twice()

	require.NoError(t, cache.RefreshAll(context.Background()))

	entity, _ := ledger.Get("cat-1")
	require.NotNil(t, entity.CurrentAttribute)
	assert.Equal(t, domain.MoodHungry, *entity.CurrentAttribute)
	assert.Nil(t, entity.LastAttributeRefreshAt)

	require.NoError(t, cache.RefreshAll(context.Background()))
}

func TestMoodCacheKeepsLocalAnswerDueWhenAgentFails(t *testing.T) {
	t.Parallel()

	fed := confirmedEntity("cat-1")
	fed.LastDonationAt = ptrTime(testNow.Add(-10 * time.Minute))

	ledger := NewLedger(nil, fixedClock{now: testNow}, nil)
	ledger.Replace([]domain.OwnedEntity{fed})
	agent := mocks.NewMockMoodOracle(t)
	agent.EXPECT().QueryAttribute(mock.Anything, keyFor("cat-1")).Return("", domain.ErrOracleUnavailable).Twice()
	chained := oracleadapter.NewFallback(agent, oracleadapter.NewLocal(fixedClock{now: testNow}))
	cache := NewMoodCache(ledger, chained, fixedClock{now: testNow}, domain.MoodTTL, time.Hour, nil)

	require.NoError(t, cache.RefreshAll(context.Background()))

	entity, _ := ledger.Get("cat-1")
	require.NotNil(t, entity.CurrentAttribute)
	assert.Equal(t, domain.MoodContent, *entity.CurrentAttribute)
	assert.Nil(t, entity.LastAttributeRefreshAt)

	require.NoError(t, cache.RefreshAll(context.Background()))
	agent.AssertNumberOfCalls(t, "QueryAttribute", 2)
}

func TestMoodCacheOneFailureDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	ledger, oracle, cache := newMoodRig(t, confirmedEntity("cat-1"), confirmedEntity("dog-1"))
	oracle.EXPECT().QueryAttribute(mock.Anything, keyFor("cat-1")).Return("", domain.ErrOracleUnavailable).Once()
	oracle.EXPECT().QueryAttribute(mock.Anything, keyFor("dog-1")).Return(domain.MoodContent, nil).Once()

	require.NoError(t, cache.RefreshAll(context.Background()))

	entity, _ := ledger.Get("dog-1")
	assert.Equal(t, domain.MoodContent, *entity.CurrentAttribute)
	assert.NotNil(t, entity.LastAttributeRefreshAt)
}

func TestMoodCacheSkipsPendingAdoptions(t *testing.T) {
	t.Parallel()

	ledger, _, cache := newMoodRig(t)
	require.NoError(t, ledger.BeginAdoption(catIntent, "0xaaa"))

	require.NoError(t, cache.RefreshAll(context.Background()))

	entity, _ := ledger.Get("cat-1")
	assert.Nil(t, entity.CurrentAttribute)
}

func TestMoodCachePassesDonationHistoryToOracle(t *testing.T) {
	t.Parallel()

	fed := confirmedEntity("cat-1")
	fed.LastDonationAt = ptrTime(testNow.Add(-6 * time.Hour))
	total := int64(300)
	fed.CumulativeDonationMinor = &total

	_, oracle, cache := newMoodRig(t, fed)
	oracle.EXPECT().QueryAttribute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key domain.PersonalityKey) (string, error) {
			assert.Equal(t, int64(300), key.CumulativeDonationMinor)
			require.NotNil(t, key.LastDonationAt)
			return domain.MoodFor(key, testNow), nil
		}).Once()

	require.NoError(t, cache.RefreshAll(context.Background()))
}

func TestMoodCacheRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ledger, oracle, _ := newMoodRig(t, confirmedEntity("cat-1"))
	var calls atomic.Int32
	oracle.EXPECT().QueryAttribute(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.PersonalityKey) (string, error) {
			calls.Add(1)
			return "", domain.ErrOracleUnavailable
		}).Maybe()

	cache := NewMoodCache(ledger, oracle, fixedClock{now: testNow}, domain.MoodTTL, 5*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cache.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("mood cache did not stop")
	}
}
