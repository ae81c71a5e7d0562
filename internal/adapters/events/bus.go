package events

import (
	"sync"

	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultSubscriberBuffer = 64

// Bus fans published events out to every subscriber. Publish never blocks:
// a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan domain.Event
	nextID int
	closed bool
	logger *zap.Logger
}

var _ ports.EventPublisher = (*Bus)(nil)

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{subs: map[int]chan domain.Event{}, logger: logger}
}

func (b *Bus) Publish(event domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("event subscriber lagging, dropping event",
				zap.Int("subscriber", id),
				zap.String("type", string(event.Type)))
		}
	}
}

// Subscribe returns a channel of future events and a func that releases it.
// The channel is closed on unsubscribe or when the bus closes.
func (b *Bus) Subscribe(buffer int) (<-chan domain.Event, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	ch := make(chan domain.Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
