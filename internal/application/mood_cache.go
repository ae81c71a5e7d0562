package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMoodInterval = time.Hour
	maxConcurrentQuery  = 4
)

// MoodCache keeps CurrentAttribute fresh for every confirmed pet in the
// Ledger. A pet is queried at most once per TTL window; an oracle failure
// stores the hungry fallback and leaves the pet due for the next pass.
type MoodCache struct {
	ledger   *Ledger
	oracle   ports.MoodOracle
	clock    ports.Clock
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger

	// serializes passes so a tick never overlaps a change-triggered refresh
	pass sync.Mutex
}

func NewMoodCache(ledger *Ledger, oracle ports.MoodOracle, clock ports.Clock, ttl, interval time.Duration, logger *zap.Logger) *MoodCache {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = domain.MoodTTL
	}
	if interval <= 0 {
		interval = DefaultMoodInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MoodCache{
		ledger:   ledger,
		oracle:   oracle,
		clock:    clock,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// RefreshAll runs one pass over the current snapshot. It only returns an
// error when ctx is done; per-pet oracle failures are absorbed.
func (c *MoodCache) RefreshAll(ctx context.Context) error {
	c.pass.Lock()
	defer c.pass.Unlock()

	now := c.clock.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuery)

	for _, entity := range c.ledger.Snapshot() {
		entity := entity
		if !entity.Confirmed() || !domain.RefreshDue(entity, now, c.ttl) {
			continue
		}

		g.Go(func() error {
			c.refresh(gctx, entity, now)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Run refreshes once, then again on every tick and every ledger change,
// until ctx is cancelled.
func (c *MoodCache) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Debug("mood cache started", zap.Duration("ttl", c.ttl), zap.Duration("interval", c.interval))

	for {
		if err := c.RefreshAll(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Debug("mood cache stopped")
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			c.logger.Debug("mood cache stopped")
			return nil
		case <-ticker.C:
		case <-c.ledger.Changes():
		}
	}
}

func (c *MoodCache) refresh(ctx context.Context, entity domain.OwnedEntity, now time.Time) {
	value, err := c.oracle.QueryAttribute(ctx, entity.PersonalityKey())
	if err != nil {
		fallback := domain.MoodHungry
		if value != "" && errors.Is(err, domain.ErrOracleUnavailable) {
			fallback = value
		}
		c.logger.Warn("mood oracle failed, using fallback",
			zap.String("pet", string(entity.ID)),
			zap.String("mood", fallback),
			zap.Error(err))
		c.apply(entity.ID, fallback, nil)
		return
	}

	c.apply(entity.ID, value, &now)
}

func (c *MoodCache) apply(id domain.EntityID, value string, refreshedAt *time.Time) {
	if err := c.ledger.ApplyAttribute(id, value, refreshedAt); err != nil {
		c.logger.Debug("pet left the ledger before mood was stored", zap.String("pet", string(id)), zap.Error(err))
	}
}
