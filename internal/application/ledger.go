package application

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

// Ledger owns the in-memory collection of adopted pets. It is the only
// writer of that collection; MoodCache writes back through ApplyAttribute.
type Ledger struct {
	mu       sync.RWMutex
	entities []domain.OwnedEntity
	index    map[domain.EntityID]int
	changes  chan struct{}
	events   ports.EventPublisher
	clock    ports.Clock
	logger   *zap.Logger
}

func NewLedger(events ports.EventPublisher, clock ports.Clock, logger *zap.Logger) *Ledger {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ledger{
		index:   map[domain.EntityID]int{},
		changes: make(chan struct{}, 1),
		events:  events,
		clock:   clock,
		logger:  logger,
	}
}

// Changes signals, coalesced, every time an entity is added or removed.
func (l *Ledger) Changes() <-chan struct{} {
	return l.changes
}

// Replace seeds the collection from the chain. Duplicate ids keep the first entry.
func (l *Ledger) Replace(entities []domain.OwnedEntity) {
	l.mu.Lock()
	l.entities = make([]domain.OwnedEntity, 0, len(entities))
	l.index = make(map[domain.EntityID]int, len(entities))
	for _, entity := range entities {
		if _, ok := l.index[entity.ID]; ok {
			l.logger.Warn("dropping duplicate owned entity", zap.String("id", string(entity.ID)))
			continue
		}
		entity = entity.Clone()
		entity.Phase = domain.PhaseConfirmed
		entity.PendingReference = ""
		l.index[entity.ID] = len(l.entities)
		l.entities = append(l.entities, entity)
	}
	l.mu.Unlock()

	l.notify()
}

// BeginAdoption records a submitted but unconfirmed adoption.
func (l *Ledger) BeginAdoption(intent domain.AdoptionIntent, pendingRef string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.index[intent.EntityID]; ok {
		if l.entities[i].Confirmed() {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, intent.EntityID)
		}
		return fmt.Errorf("%w: %s has a pending adoption", domain.ErrAlreadyOwned, intent.EntityID)
	}

	l.index[intent.EntityID] = len(l.entities)
	l.entities = append(l.entities, domain.OwnedEntity{
		ID:               intent.EntityID,
		DisplayName:      intent.DisplayName,
		Category:         intent.Category,
		IconGlyph:        intent.Glyph(),
		AcquiredAt:       l.clock.Now(),
		Phase:            domain.PhasePending,
		PendingReference: pendingRef,
	})

	return nil
}

// AttachPendingReference replaces the reference of a still pending entry,
// typically a reservation with the submitted transaction hash.
func (l *Ledger) AttachPendingReference(id domain.EntityID, from, to string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok || l.entities[i].Confirmed() || l.entities[i].PendingReference != from {
		return false
	}
	l.entities[i].PendingReference = to
	return true
}

// DiscardPending drops the pending entry created for pendingRef, if it is still pending.
func (l *Ledger) DiscardPending(id domain.EntityID, pendingRef string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return
	}
	entity := l.entities[i]
	if entity.Confirmed() || entity.PendingReference != pendingRef {
		return
	}
	l.removeLocked(i)
}

// MaterializeAdoption promotes or creates the confirmed entity for result.
// Applying the same ConfirmedID twice returns the existing entity.
func (l *Ledger) MaterializeAdoption(intent domain.AdoptionIntent, result domain.TransactionResult) (domain.OwnedEntity, error) {
	l.mu.Lock()

	for _, entity := range l.entities {
		if entity.TokenReference != nil && *entity.TokenReference == result.ConfirmedID {
			l.mu.Unlock()
			return entity.Clone(), nil
		}
	}

	token := result.ConfirmedID
	now := l.clock.Now()
	var materialized domain.OwnedEntity
	if i, ok := l.index[intent.EntityID]; ok {
		if l.entities[i].Confirmed() {
			l.mu.Unlock()
			return domain.OwnedEntity{}, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, intent.EntityID)
		}
		entity := &l.entities[i]
		entity.Phase = domain.PhaseConfirmed
		entity.PendingReference = ""
		entity.TokenReference = &token
		entity.AcquiredAt = now
		materialized = entity.Clone()
	} else {
		materialized = domain.OwnedEntity{
			ID:             intent.EntityID,
			DisplayName:    intent.DisplayName,
			Category:       intent.Category,
			IconGlyph:      intent.Glyph(),
			AcquiredAt:     now,
			Phase:          domain.PhaseConfirmed,
			TokenReference: &token,
		}
		l.index[intent.EntityID] = len(l.entities)
		l.entities = append(l.entities, materialized.Clone())
	}
	l.mu.Unlock()

	l.events.Publish(domain.Event{Type: domain.EventEntityAdopted, EntityID: materialized.ID, Value: token})
	l.notify()

	return materialized, nil
}

// ApplyDonation adds amountMinor to the confirmed entity's donation total.
func (l *Ledger) ApplyDonation(id domain.EntityID, amountMinor int64) (domain.OwnedEntity, error) {
	l.mu.Lock()

	i, ok := l.index[id]
	if !ok || !l.entities[i].Confirmed() {
		l.mu.Unlock()
		return domain.OwnedEntity{}, fmt.Errorf("%w: %s", domain.ErrUnknownEntity, id)
	}

	entity := &l.entities[i]
	total, err := entity.DonationTotalAfter(amountMinor)
	if err != nil {
		l.mu.Unlock()
		return domain.OwnedEntity{}, err
	}
	now := l.clock.Now()
	entity.LastDonationAt = &now
	entity.CumulativeDonationMinor = &total
	updated := entity.Clone()
	l.mu.Unlock()

	l.events.Publish(domain.Event{Type: domain.EventEntityDonatedTo, EntityID: id, Value: strconv.FormatInt(total, 10)})

	return updated, nil
}

// ApplyAttribute stores a mood value. refreshedAt may be nil for a fallback
// value; an older refreshedAt than the stored one is ignored.
func (l *Ledger) ApplyAttribute(id domain.EntityID, value string, refreshedAt *time.Time) error {
	l.mu.Lock()

	i, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrUnknownEntity, id)
	}

	entity := &l.entities[i]
	changed := entity.CurrentAttribute == nil || *entity.CurrentAttribute != value
	v := value
	entity.CurrentAttribute = &v
	if refreshedAt != nil && (entity.LastAttributeRefreshAt == nil || refreshedAt.After(*entity.LastAttributeRefreshAt)) {
		at := *refreshedAt
		entity.LastAttributeRefreshAt = &at
	}
	l.mu.Unlock()

	if changed {
		l.events.Publish(domain.Event{Type: domain.EventAttributeUpdated, EntityID: id, Value: value})
	}

	return nil
}

func (l *Ledger) Owns(id domain.EntityID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	return ok && l.entities[i].Confirmed()
}

func (l *Ledger) Get(id domain.EntityID) (domain.OwnedEntity, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return domain.OwnedEntity{}, false
	}
	return l.entities[i].Clone(), true
}

// Snapshot returns a copy of the collection in insertion order.
func (l *Ledger) Snapshot() []domain.OwnedEntity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.OwnedEntity, 0, len(l.entities))
	for _, entity := range l.entities {
		out = append(out, entity.Clone())
	}
	return out
}

func (l *Ledger) removeLocked(i int) {
	l.entities = append(l.entities[:i], l.entities[i+1:]...)
	l.index = make(map[domain.EntityID]int, len(l.entities))
	for j, entity := range l.entities {
		l.index[entity.ID] = j
	}
}

func (l *Ledger) notify() {
	select {
	case l.changes <- struct{}{}:
	default:
	}
}
