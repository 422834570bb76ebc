package ports

import (
	"context"
	"time"

	"shipment-custody/internal/features/custody/domain"
)

// CustodyService defines the primary port for custody transactions.
type CustodyService interface {
	Receive(ctx context.Context, shipmentID string, tx domain.ReceiveTx) (*domain.Shipment, error)
	RecordException(ctx context.Context, shipmentID string, tx domain.ExceptionTx) (*domain.Shipment, domain.ShipmentExceptionEvent, error)
	Release(ctx context.Context, shipmentID string, tx domain.ReleaseTx) (*domain.Shipment, domain.ShipmentReleaseEvent, error)
	Overtake(ctx context.Context, shipmentID string, tx domain.OvertakeTx) (*domain.Shipment, *domain.Contract, domain.ShipmentOvertakeEvent, error)

	GetShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	GetContract(ctx context.Context, contractID string) (*domain.Contract, error)
	GetParticipant(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error)

	SetupDemo(ctx context.Context, now time.Time) error
}

// ShipmentRepository defines the secondary port for shipment storage.
// Get returns domain.ErrEntityNotFound for unknown IDs; other failures wrap domain.ErrStorage.
type ShipmentRepository interface {
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	Update(ctx context.Context, shipment *domain.Shipment) error
	AddAll(ctx context.Context, shipments []domain.Shipment) error
}

// ContractRepository defines the secondary port for contract storage.
// Contracts only change through CustodyStore.CommitOvertake.
type ContractRepository interface {
	Get(ctx context.Context, id string) (*domain.Contract, error)
	AddAll(ctx context.Context, contracts []domain.Contract) error
}

// CustodyStore writes the successors of an overtake as one unit: either both the
// shipment and the contract are stored or neither is.
type CustodyStore interface {
	CommitOvertake(ctx context.Context, shipment *domain.Shipment, contract *domain.Contract) error
}

// ParticipantRepository defines the secondary port for participant reference data.
type ParticipantRepository interface {
	Get(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error)
	AddAll(ctx context.Context, participants []domain.Participant) error
}

// EventPublisher delivers events to external subscribers. Delivery is fire-and-forget.
type EventPublisher interface {
	Emit(ctx context.Context, event domain.Event)
}
