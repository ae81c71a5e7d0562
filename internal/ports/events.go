package ports

import "github.com/temanbulus/nfa-cli/internal/domain"

type EventPublisher interface {
	Publish(event domain.Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(domain.Event) {}
