package domain

type EventType string

const (
	EventEntityAdopted    EventType = "entity.adopted"
	EventEntityDonatedTo  EventType = "entity.donated"
	EventAttributeUpdated EventType = "entity.attribute_updated"
	EventSessionChanged   EventType = "session.changed"
)

type Event struct {
	Type     EventType `json:"type"`
	EntityID EntityID  `json:"entityId,omitempty"`
	Value    string    `json:"value,omitempty"`
}
