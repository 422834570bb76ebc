package domain

import "time"

// ShipmentStatus represents the custody state of a shipment.
type ShipmentStatus string

const (
	// StatusCreated is the initial state set by the creation flow.
	StatusCreated ShipmentStatus = "CREATED"
	// StatusReleased indicates the current shipper handed the shipment over and is waiting for pickup.
	StatusReleased ShipmentStatus = "RELEASED"
	// StatusInTransit indicates a shipper took custody after a release.
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	// StatusArrived indicates the recipient received the shipment. Terminal.
	StatusArrived ShipmentStatus = "ARRIVED"
)

var allowedStatuses = [...]ShipmentStatus{
	StatusCreated, StatusReleased, StatusInTransit, StatusArrived,
}

// Valid checks if the ShipmentStatus is one of the known states.
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition may leave this state.
func (s ShipmentStatus) Terminal() bool {
	return s == StatusArrived
}

// ShipmentException is an incident (delay, damage, GPS anomaly) recorded against a shipment.
type ShipmentException struct {
	// Message is the free-text description of the incident.
	Message string `json:"message"`
	// GPSLat is the latitude at the time of the incident.
	GPSLat float64 `json:"gps_lat"`
	// GPSLong is the longitude at the time of the incident.
	GPSLong float64 `json:"gps_long"`
	// Timestamp is when the incident occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Shipment is a physical consignment moving along a custody chain.
type Shipment struct {
	// ID is the unique shipment identifier.
	ID string `json:"shipment_id"`
	// Status is the current custody state.
	Status ShipmentStatus `json:"status"`
	// ContractRef is the ID of the contract governing this shipment.
	ContractRef string `json:"contract"`
	// InsurerRef references the insuring participant. Passthrough only.
	InsurerRef string `json:"insurer,omitempty"`
	// DeviceRef references the tracking device or container. Passthrough only.
	DeviceRef string `json:"device,omitempty"`
	// Exceptions holds recorded incidents in insertion order.
	Exceptions []ShipmentException `json:"shipment_exceptions"`
	// ReceivedAt is when the last accepted receive happened. Nil until then.
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// Clone returns a deep copy so callers can derive a successor without touching the snapshot.
func (s Shipment) Clone() Shipment {
	out := s
	out.Exceptions = append(make([]ShipmentException, 0, len(s.Exceptions)+1), s.Exceptions...)
	if s.ReceivedAt != nil {
		at := *s.ReceivedAt
		out.ReceivedAt = &at
	}
	return out
}

// Contract binds a dispatcher, a recipient and the chain of shippers carrying a shipment.
type Contract struct {
	// ID is the unique contract identifier.
	ID string `json:"contract_id"`
	// DispatcherRef references the dispatching participant.
	DispatcherRef string `json:"dispatcher"`
	// RecipientRef references the receiving participant.
	RecipientRef string `json:"recipient"`
	// Shippers is the custody chain. The last element is the current custodian.
	Shippers []string `json:"shippers"`
	// ArrivalDateTime is the expected delivery time. Advisory only.
	ArrivalDateTime time.Time `json:"arrival_date_time"`
}

// Clone returns a deep copy of the contract.
func (c Contract) Clone() Contract {
	out := c
	out.Shippers = append(make([]string, 0, len(c.Shippers)+1), c.Shippers...)
	return out
}
