package service

import (
	"context"
	"fmt"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"
	"shipment-custody/internal/features/custody/ports"

	"go.uber.org/zap"
)

// Options tunes the guards applied by the Dispatcher.
type Options struct {
	// StrictReceive admits receive only from IN_TRANSIT.
	StrictReceive bool
}

// Dispatcher implements ports.CustodyService. Each call loads the current entities,
// applies the pure transition, persists the successors and emits at most one event.
// It holds no state of its own and must not be called concurrently for the same
// shipment; see Serialized.
type Dispatcher struct {
	shipments    ports.ShipmentRepository
	contracts    ports.ContractRepository
	participants ports.ParticipantRepository
	store        ports.CustodyStore
	publisher    ports.EventPublisher
	policy       domain.ReceivePolicy
	logger       *zap.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	shipments ports.ShipmentRepository,
	contracts ports.ContractRepository,
	participants ports.ParticipantRepository,
	store ports.CustodyStore,
	publisher ports.EventPublisher,
	opts Options,
) *Dispatcher {
	return &Dispatcher{
		shipments:    shipments,
		contracts:    contracts,
		participants: participants,
		store:        store,
		publisher:    publisher,
		policy:       domain.ReceivePolicy{Strict: opts.StrictReceive},
		logger:       logger.Get(),
	}
}

// Receive marks a shipment as arrived. It emits no event.
func (d *Dispatcher) Receive(ctx context.Context, shipmentID string, tx domain.ReceiveTx) (*domain.Shipment, error) {
	shipment, err := d.loadShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Receive(*shipment, tx, d.policy)
	if err != nil {
		return nil, err
	}

	if err := d.shipments.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("service: failed to update shipment %s: %w", shipmentID, err)
	}

	d.logArrival(ctx, &next)
	return &next, nil
}

// RecordException appends an incident to a shipment and emits a ShipmentExceptionEvent.
func (d *Dispatcher) RecordException(ctx context.Context, shipmentID string, tx domain.ExceptionTx) (*domain.Shipment, domain.ShipmentExceptionEvent, error) {
	shipment, err := d.loadShipment(ctx, shipmentID)
	if err != nil {
		return nil, domain.ShipmentExceptionEvent{}, err
	}

	next, event, err := domain.RecordException(*shipment, tx)
	if err != nil {
		return nil, domain.ShipmentExceptionEvent{}, err
	}

	if err := d.shipments.Update(ctx, &next); err != nil {
		return nil, domain.ShipmentExceptionEvent{}, fmt.Errorf("service: failed to update shipment %s: %w", shipmentID, err)
	}

	d.logger.Info("Shipment exception recorded",
		zap.String("shipment_id", shipmentID),
		zap.String("message", tx.Message),
		zap.Int("exceptions", len(next.Exceptions)),
	)
	d.publisher.Emit(ctx, event)
	return &next, event, nil
}

// Release hands a shipment over from its current custodian and emits a ShipmentReleaseEvent.
func (d *Dispatcher) Release(ctx context.Context, shipmentID string, tx domain.ReleaseTx) (*domain.Shipment, domain.ShipmentReleaseEvent, error) {
	shipment, err := d.loadShipment(ctx, shipmentID)
	if err != nil {
		return nil, domain.ShipmentReleaseEvent{}, err
	}
	if err := domain.Admits(shipment.Status, domain.TransitionRelease); err != nil {
		return nil, domain.ShipmentReleaseEvent{}, err
	}
	contract, err := d.loadContract(ctx, shipment.ContractRef)
	if err != nil {
		return nil, domain.ShipmentReleaseEvent{}, err
	}

	next, event, err := domain.Release(*shipment, *contract, tx)
	if err != nil {
		return nil, domain.ShipmentReleaseEvent{}, err
	}

	if err := d.shipments.Update(ctx, &next); err != nil {
		return nil, domain.ShipmentReleaseEvent{}, fmt.Errorf("service: failed to update shipment %s: %w", shipmentID, err)
	}

	d.logger.Info("Shipment released",
		zap.String("shipment_id", shipmentID),
		zap.String("shipper_old", tx.ShipperOld),
		zap.String("shipper_new", tx.ShipperNew),
	)
	d.publisher.Emit(ctx, event)
	return &next, event, nil
}

// Overtake moves a released shipment into transit, appends the new shipper to the
// custody chain and emits a ShipmentOvertakeEvent. Shipment and contract are committed together.
func (d *Dispatcher) Overtake(ctx context.Context, shipmentID string, tx domain.OvertakeTx) (*domain.Shipment, *domain.Contract, domain.ShipmentOvertakeEvent, error) {
	shipment, err := d.loadShipment(ctx, shipmentID)
	if err != nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, err
	}
	if err := domain.Admits(shipment.Status, domain.TransitionOvertake); err != nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, err
	}
	contract, err := d.loadContract(ctx, shipment.ContractRef)
	if err != nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, err
	}

	nextShipment, nextContract, event, err := domain.Overtake(*shipment, *contract, tx)
	if err != nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, err
	}

	if err := d.store.CommitOvertake(ctx, &nextShipment, &nextContract); err != nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, fmt.Errorf("service: failed to commit overtake of shipment %s: %w", shipmentID, err)
	}

	d.logger.Info("Shipment overtaken",
		zap.String("shipment_id", shipmentID),
		zap.String("shipper_old", tx.ShipperOld),
		zap.String("shipper_new", tx.ShipperNew),
		zap.Int("custody_chain_length", len(nextContract.Shippers)),
	)
	d.publisher.Emit(ctx, event)
	return &nextShipment, &nextContract, event, nil
}

// GetShipment retrieves a shipment.
func (d *Dispatcher) GetShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	return d.loadShipment(ctx, shipmentID)
}

// GetContract retrieves a contract.
func (d *Dispatcher) GetContract(ctx context.Context, contractID string) (*domain.Contract, error) {
	return d.loadContract(ctx, contractID)
}

// GetParticipant retrieves a participant by role and ID.
func (d *Dispatcher) GetParticipant(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error) {
	p, err := d.participants.Get(ctx, role, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get participant %s/%s: %w", role, id, err)
	}
	return p, nil
}

func (d *Dispatcher) loadShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	shipment, err := d.shipments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get shipment %s: %w", id, err)
	}
	return shipment, nil
}

func (d *Dispatcher) loadContract(ctx context.Context, id string) (*domain.Contract, error) {
	contract, err := d.contracts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get contract %s: %w", id, err)
	}
	return contract, nil
}

// logArrival compares the receive time against the contract's expected arrival.
// A missing contract only downgrades the log line.
func (d *Dispatcher) logArrival(ctx context.Context, shipment *domain.Shipment) {
	if shipment.ReceivedAt == nil {
		return
	}
	receivedAt := *shipment.ReceivedAt
	fields := []zap.Field{
		zap.String("shipment_id", shipment.ID),
		zap.Time("received_at", receivedAt),
	}

	contract, err := d.contracts.Get(ctx, shipment.ContractRef)
	if err != nil {
		d.logger.Info("Shipment received", append(fields, zap.NamedError("contract_error", err))...)
		return
	}

	fields = append(fields, zap.Time("arrival_date_time", contract.ArrivalDateTime))
	if !contract.ArrivalDateTime.IsZero() && receivedAt.After(contract.ArrivalDateTime) {
		d.logger.Warn("Shipment received after contracted arrival", fields...)
		return
	}
	d.logger.Info("Shipment received", fields...)
}
