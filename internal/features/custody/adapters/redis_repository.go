package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-custody/internal/core/cache"
	"shipment-custody/internal/features/custody/domain"
)

const (
	shipmentKeyPrefix    = "shipment:"
	contractKeyPrefix    = "contract:"
	participantKeyPrefix = "participant:"
)

func shipmentKey(id string) string { return shipmentKeyPrefix + id }
func contractKey(id string) string { return contractKeyPrefix + id }
func participantKey(role domain.ParticipantRole, id string) string {
	return participantKeyPrefix + string(role) + ":" + id
}

// getJSON loads and decodes key, mapping store failures onto the domain error kinds.
func getJSON[T any](ctx context.Context, c cache.Cache, kind, key string) (*T, error) {
	data, err := c.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrEntityNotFound, kind, key)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal %s: %w", domain.ErrStorage, kind, err)
	}
	return &v, nil
}

func setJSON(ctx context.Context, c cache.Cache, kind, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %w", domain.ErrStorage, kind, err)
	}
	if err := c.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

func marshalInto(values map[string][]byte, kind, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %w", domain.ErrStorage, kind, err)
	}
	values[key] = data
	return nil
}

func setManyJSON[T any](ctx context.Context, c cache.Cache, kind string, items []T, key func(T) string) error {
	values := make(map[string][]byte, len(items))
	for _, item := range items {
		if err := marshalInto(values, kind, key(item), item); err != nil {
			return err
		}
	}
	if err := c.SetMany(ctx, values); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

// RedisShipmentRepository implements ports.ShipmentRepository on the cache.
type RedisShipmentRepository struct {
	cache cache.Cache
}

// NewRedisShipmentRepository creates a new RedisShipmentRepository.
func NewRedisShipmentRepository(c cache.Cache) *RedisShipmentRepository {
	return &RedisShipmentRepository{cache: c}
}

// Get retrieves a shipment by ID.
func (r *RedisShipmentRepository) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	return getJSON[domain.Shipment](ctx, r.cache, "shipment", shipmentKey(id))
}

// Update stores the shipment, replacing any previous version.
func (r *RedisShipmentRepository) Update(ctx context.Context, shipment *domain.Shipment) error {
	return setJSON(ctx, r.cache, "shipment", shipmentKey(shipment.ID), shipment)
}

// AddAll stores shipments in one transaction.
func (r *RedisShipmentRepository) AddAll(ctx context.Context, shipments []domain.Shipment) error {
	return setManyJSON(ctx, r.cache, "shipment", shipments, func(s domain.Shipment) string { return shipmentKey(s.ID) })
}

// RedisContractRepository implements ports.ContractRepository on the cache.
type RedisContractRepository struct {
	cache cache.Cache
}

// NewRedisContractRepository creates a new RedisContractRepository.
func NewRedisContractRepository(c cache.Cache) *RedisContractRepository {
	return &RedisContractRepository{cache: c}
}

// Get retrieves a contract by ID.
func (r *RedisContractRepository) Get(ctx context.Context, id string) (*domain.Contract, error) {
	return getJSON[domain.Contract](ctx, r.cache, "contract", contractKey(id))
}

// AddAll stores contracts in one transaction.
func (r *RedisContractRepository) AddAll(ctx context.Context, contracts []domain.Contract) error {
	return setManyJSON(ctx, r.cache, "contract", contracts, func(c domain.Contract) string { return contractKey(c.ID) })
}

// RedisParticipantRepository implements ports.ParticipantRepository on the cache.
type RedisParticipantRepository struct {
	cache cache.Cache
}

// NewRedisParticipantRepository creates a new RedisParticipantRepository.
func NewRedisParticipantRepository(c cache.Cache) *RedisParticipantRepository {
	return &RedisParticipantRepository{cache: c}
}

// Get retrieves a participant by role and ID.
func (r *RedisParticipantRepository) Get(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error) {
	return getJSON[domain.Participant](ctx, r.cache, "participant", participantKey(role, id))
}

// AddAll stores participants in one transaction.
func (r *RedisParticipantRepository) AddAll(ctx context.Context, participants []domain.Participant) error {
	return setManyJSON(ctx, r.cache, "participant", participants, func(p domain.Participant) string { return participantKey(p.Role, p.ID) })
}

// RedisCustodyStore implements ports.CustodyStore with a single MULTI/EXEC write.
type RedisCustodyStore struct {
	cache cache.Cache
}

// NewRedisCustodyStore creates a new RedisCustodyStore.
func NewRedisCustodyStore(c cache.Cache) *RedisCustodyStore {
	return &RedisCustodyStore{cache: c}
}

// CommitOvertake stores the shipment and its contract in one transaction.
func (s *RedisCustodyStore) CommitOvertake(ctx context.Context, shipment *domain.Shipment, contract *domain.Contract) error {
	values := make(map[string][]byte, 2)
	if err := marshalInto(values, "shipment", shipmentKey(shipment.ID), shipment); err != nil {
		return err
	}
	if err := marshalInto(values, "contract", contractKey(contract.ID), contract); err != nil {
		return err
	}
	if err := s.cache.SetMany(ctx, values); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}
