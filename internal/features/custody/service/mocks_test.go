package service

import (
	"context"

	"shipment-custody/internal/features/custody/domain"

	"github.com/stretchr/testify/mock"
)

// MockShipmentRepository is a mock implementation of ports.ShipmentRepository
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, shipment *domain.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) AddAll(ctx context.Context, shipments []domain.Shipment) error {
	args := m.Called(ctx, shipments)
	return args.Error(0)
}

// MockContractRepository is a mock implementation of ports.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Get(ctx context.Context, id string) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) AddAll(ctx context.Context, contracts []domain.Contract) error {
	args := m.Called(ctx, contracts)
	return args.Error(0)
}

// MockParticipantRepository is a mock implementation of ports.ParticipantRepository
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Get(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error) {
	args := m.Called(ctx, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockParticipantRepository) AddAll(ctx context.Context, participants []domain.Participant) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}

// MockCustodyStore is a mock implementation of ports.CustodyStore
type MockCustodyStore struct {
	mock.Mock
}

func (m *MockCustodyStore) CommitOvertake(ctx context.Context, shipment *domain.Shipment, contract *domain.Contract) error {
	args := m.Called(ctx, shipment, contract)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event domain.Event) {
	m.Called(ctx, event)
}

type mocks struct {
	shipments    *MockShipmentRepository
	contracts    *MockContractRepository
	participants *MockParticipantRepository
	store        *MockCustodyStore
	publisher    *MockEventPublisher
}

func newTestDispatcher(opts Options) (*Dispatcher, mocks) {
	m := mocks{
		shipments:    new(MockShipmentRepository),
		contracts:    new(MockContractRepository),
		participants: new(MockParticipantRepository),
		store:        new(MockCustodyStore),
		publisher:    new(MockEventPublisher),
	}
	return NewDispatcher(m.shipments, m.contracts, m.participants, m.store, m.publisher, opts), m
}

func (m mocks) assertExpectations(t mock.TestingT) {
	m.shipments.AssertExpectations(t)
	m.contracts.AssertExpectations(t)
	m.participants.AssertExpectations(t)
	m.store.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}
