// Package events publishes desk events to RabbitMQ so other systems
// (billing, archiving) can react to them.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContractGeneratedQueue is the durable queue contract events are routed to.
const ContractGeneratedQueue = "contract.generated"

// ContractGenerated is emitted after a contract document was produced.
type ContractGenerated struct {
	ID          uuid.UUID `json:"id"`
	StayID      int64     `json:"stay_id"`
	Room        int       `json:"room"`
	Guest       string    `json:"guest"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewContractGenerated stamps a new event with a random ID.
func NewContractGenerated(stayID int64, room int, guest, filename string, at time.Time) ContractGenerated {
	return ContractGenerated{
		ID:          uuid.New(),
		StayID:      stayID,
		Room:        room,
		Guest:       guest,
		Filename:    filename,
		GeneratedAt: at.UTC(),
	}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	PublishContractGenerated(ctx context.Context, e ContractGenerated) error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

// PublishContractGenerated does nothing.
func (Nop) PublishContractGenerated(context.Context, ContractGenerated) error { return nil }
