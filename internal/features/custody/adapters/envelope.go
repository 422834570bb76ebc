package adapters

import (
	"encoding/json"
	"time"

	"shipment-custody/internal/features/custody/domain"

	"github.com/google/uuid"
)

// Envelope is the wire form of an emitted event.
type Envelope struct {
	// ID lets subscribers drop redeliveries.
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	ShipmentID string       `json:"shipment_id"`
	EmittedAt  time.Time    `json:"emitted_at"`
	Payload    domain.Event `json:"payload"`
}

// NewEnvelope wraps event with a fresh ID.
func NewEnvelope(event domain.Event, now time.Time) Envelope {
	return Envelope{
		ID:         uuid.NewString(),
		Type:       event.EventType(),
		ShipmentID: event.ShipmentRef(),
		EmittedAt:  now,
		Payload:    event,
	}
}

func encodeEvent(event domain.Event) (Envelope, []byte, error) {
	env := NewEnvelope(event, time.Now().UTC())
	data, err := json.Marshal(env)
	return env, data, err
}
