package service

import (
	"context"
	"sync"
	"time"

	"shipment-custody/internal/features/custody/domain"
	"shipment-custody/internal/features/custody/ports"
)

// Serialized runs the wrapped service one transaction at a time. The HTTP host uses it
// in place of a ledger runtime that orders transactions before they reach the core.
type Serialized struct {
	mu   sync.Mutex
	next ports.CustodyService
}

// NewSerialized wraps next.
func NewSerialized(next ports.CustodyService) *Serialized {
	return &Serialized{next: next}
}

func (s *Serialized) Receive(ctx context.Context, shipmentID string, tx domain.ReceiveTx) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Receive(ctx, shipmentID, tx)
}

func (s *Serialized) RecordException(ctx context.Context, shipmentID string, tx domain.ExceptionTx) (*domain.Shipment, domain.ShipmentExceptionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.RecordException(ctx, shipmentID, tx)
}

func (s *Serialized) Release(ctx context.Context, shipmentID string, tx domain.ReleaseTx) (*domain.Shipment, domain.ShipmentReleaseEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Release(ctx, shipmentID, tx)
}

func (s *Serialized) Overtake(ctx context.Context, shipmentID string, tx domain.OvertakeTx) (*domain.Shipment, *domain.Contract, domain.ShipmentOvertakeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Overtake(ctx, shipmentID, tx)
}

func (s *Serialized) SetupDemo(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.SetupDemo(ctx, now)
}

// Reads are not serialized; they observe whatever the store last committed.

func (s *Serialized) GetShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	return s.next.GetShipment(ctx, shipmentID)
}

func (s *Serialized) GetContract(ctx context.Context, contractID string) (*domain.Contract, error) {
	return s.next.GetContract(ctx, contractID)
}

func (s *Serialized) GetParticipant(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error) {
	return s.next.GetParticipant(ctx, role, id)
}
