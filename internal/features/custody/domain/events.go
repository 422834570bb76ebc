package domain

// Event type names as published to subscribers.
const (
	EventTypeException = "ShipmentExceptionEvent"
	EventTypeRelease   = "ShipmentReleaseEvent"
	EventTypeOvertake  = "ShipmentOvertakeEvent"
)

// Event is a notification produced by a successful transition.
type Event interface {
	// EventType returns the stable event name.
	EventType() string
	// ShipmentRef returns the ID of the shipment the event is about.
	ShipmentRef() string
}

// ShipmentExceptionEvent is emitted when an exception is admitted.
type ShipmentExceptionEvent struct {
	Message    string  `json:"message"`
	GPSLat     float64 `json:"gps_lat"`
	GPSLong    float64 `json:"gps_long"`
	ShipmentID string  `json:"shipment_id"`
}

func (e ShipmentExceptionEvent) EventType() string   { return EventTypeException }
func (e ShipmentExceptionEvent) ShipmentRef() string { return e.ShipmentID }

// ShipmentReleaseEvent is emitted when the current shipper releases a shipment.
type ShipmentReleaseEvent struct {
	ShipperOld string `json:"shipper_old"`
	ShipperNew string `json:"shipper_new"`
	ShipmentID string `json:"shipment_id"`
}

func (e ShipmentReleaseEvent) EventType() string   { return EventTypeRelease }
func (e ShipmentReleaseEvent) ShipmentRef() string { return e.ShipmentID }

// ShipmentOvertakeEvent is emitted when a new shipper takes custody.
type ShipmentOvertakeEvent struct {
	ShipperOld string `json:"shipper_old"`
	ShipperNew string `json:"shipper_new"`
	ShipmentID string `json:"shipment_id"`
}

func (e ShipmentOvertakeEvent) EventType() string   { return EventTypeOvertake }
func (e ShipmentOvertakeEvent) ShipmentRef() string { return e.ShipmentID }
