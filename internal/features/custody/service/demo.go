package service

import (
	"context"
	"fmt"
	"time"

	"shipment-custody/internal/features/custody/domain"

	"go.uber.org/zap"
)

// SetupDemo seeds participants, two contracts and two shipments for a demo run.
// Existing entities with the same IDs are overwritten.
func (d *Dispatcher) SetupDemo(ctx context.Context, now time.Time) error {
	participants := []domain.Participant{
		{ID: "oem1@email.com", Role: domain.RoleDispatcher, Address: domain.Address{Country: "USA"}},
		{ID: "foxconn@email.com", Role: domain.RoleDispatcher, Address: domain.Address{Country: "China"}},
		{ID: "mediamars@email.com", Role: domain.RoleRecipient, Address: domain.Address{Country: "UK"}},
		{ID: "expert@email.com", Role: domain.RoleRecipient, Address: domain.Address{Country: "Germany"}},
		{ID: "ship2u@email.com", Role: domain.RoleShipper, Address: domain.Address{Country: "Panama"}},
		{ID: "dhl@email.com", Role: domain.RoleShipper, Address: domain.Address{Country: "Germany"}},
		{ID: "ups@email.com", Role: domain.RoleShipper, Address: domain.Address{Country: "USA"}},
		{ID: "fedex@email.com", Role: domain.RoleShipper, Address: domain.Address{Country: "Australia"}},
		{ID: "allianz@email.com", Role: domain.RoleInsurer, Address: domain.Address{Country: "Germany"}},
		{ID: "Container-1", Role: domain.RoleDevice, Address: domain.Address{Country: "Germany"}},
		{ID: "Container-2", Role: domain.RoleDevice, Address: domain.Address{Country: "England"}},
	}

	contracts := []domain.Contract{
		{
			ID:              "con1",
			DispatcherRef:   "oem1@email.com",
			RecipientRef:    "mediamars@email.com",
			Shippers:        []string{"ship2u@email.com"},
			ArrivalDateTime: now.AddDate(0, 0, 1),
		},
		{
			ID:              "con2",
			DispatcherRef:   "foxconn@email.com",
			RecipientRef:    "expert@email.com",
			Shippers:        []string{"fedex@email.com"},
			ArrivalDateTime: now.AddDate(0, 0, 7),
		},
	}

	shipments := []domain.Shipment{
		{
			ID:          "ship1",
			Status:      domain.StatusCreated,
			ContractRef: "con1",
			InsurerRef:  "allianz@email.com",
			DeviceRef:   "Container-1",
		},
		{
			ID:          "ship2",
			Status:      domain.StatusInTransit,
			ContractRef: "con2",
			InsurerRef:  "allianz@email.com",
			DeviceRef:   "Container-2",
		},
	}

	if err := d.participants.AddAll(ctx, participants); err != nil {
		return fmt.Errorf("service: failed to seed participants: %w", err)
	}
	if err := d.contracts.AddAll(ctx, contracts); err != nil {
		return fmt.Errorf("service: failed to seed contracts: %w", err)
	}
	if err := d.shipments.AddAll(ctx, shipments); err != nil {
		return fmt.Errorf("service: failed to seed shipments: %w", err)
	}

	d.logger.Info("Demo data seeded",
		zap.Int("participants", len(participants)),
		zap.Int("contracts", len(contracts)),
		zap.Int("shipments", len(shipments)),
	)
	return nil
}
