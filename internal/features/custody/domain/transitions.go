package domain

import (
	"fmt"
	"time"
)

// Transition names a custody-changing operation.
type Transition string

const (
	TransitionRelease   Transition = "release"
	TransitionOvertake  Transition = "overtake"
	TransitionReceive   Transition = "receive"
	TransitionException Transition = "exception"
)

// transitionTable lists the transitions admitted from each status.
// Every ShipmentStatus must have an entry.
var transitionTable = map[ShipmentStatus][]Transition{
	StatusCreated:   {TransitionRelease, TransitionReceive, TransitionException},
	StatusReleased:  {TransitionOvertake, TransitionReceive, TransitionException},
	StatusInTransit: {TransitionRelease, TransitionReceive, TransitionException},
	StatusArrived:   {TransitionReceive},
}

var rejections = map[Transition]error{
	TransitionRelease:   fmt.Errorf("%w: release requires CREATED or IN_TRANSIT", ErrInvalidTransition),
	TransitionOvertake:  fmt.Errorf("%w: overtake requires RELEASED", ErrInvalidTransition),
	TransitionReceive:   fmt.Errorf("%w: receive requires IN_TRANSIT", ErrInvalidTransition),
	TransitionException: ErrShipmentAlreadyArrived,
}

// Admits reports whether t may be applied to a shipment in status from.
func Admits(from ShipmentStatus, t Transition) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, from)
	}
	for _, allowed := range transitionTable[from] {
		if allowed == t {
			return nil
		}
	}
	if err, ok := rejections[t]; ok {
		return err
	}
	return fmt.Errorf("%w: unknown transition %q", ErrInvalidTransition, t)
}

// ReceiveTx is the input of a receive transaction.
type ReceiveTx struct {
	Timestamp time.Time
}

// ExceptionTx is the input of an exception transaction.
type ExceptionTx struct {
	Message   string
	GPSLat    float64
	GPSLong   float64
	Timestamp time.Time
}

// ReleaseTx is the input of a release transaction.
type ReleaseTx struct {
	ShipperOld string
	ShipperNew string
}

// OvertakeTx is the input of an overtake transaction.
type OvertakeTx struct {
	ShipperOld string
	ShipperNew string
}

// ReceivePolicy selects how strictly receive is guarded.
type ReceivePolicy struct {
	// Strict admits receive only from IN_TRANSIT. The default accepts it from any status.
	Strict bool
}

// Receive marks the shipment ARRIVED. Receiving an ARRIVED shipment again keeps it
// ARRIVED and only refreshes ReceivedAt.
func Receive(s Shipment, tx ReceiveTx, policy ReceivePolicy) (Shipment, error) {
	if err := Admits(s.Status, TransitionReceive); err != nil {
		return Shipment{}, err
	}
	if policy.Strict && s.Status != StatusInTransit {
		return Shipment{}, rejections[TransitionReceive]
	}
	out := s.Clone()
	out.Status = StatusArrived
	at := tx.Timestamp
	out.ReceivedAt = &at
	return out, nil
}

// RecordException appends an incident to a non-terminal shipment.
func RecordException(s Shipment, tx ExceptionTx) (Shipment, ShipmentExceptionEvent, error) {
	if err := Admits(s.Status, TransitionException); err != nil {
		return Shipment{}, ShipmentExceptionEvent{}, err
	}
	out, err := AppendException(s, ShipmentException{
		Message:   tx.Message,
		GPSLat:    tx.GPSLat,
		GPSLong:   tx.GPSLong,
		Timestamp: tx.Timestamp,
	})
	if err != nil {
		return Shipment{}, ShipmentExceptionEvent{}, err
	}
	return out, ShipmentExceptionEvent{
		Message:    tx.Message,
		GPSLat:     tx.GPSLat,
		GPSLong:    tx.GPSLong,
		ShipmentID: s.ID,
	}, nil
}

// Release hands the shipment over from the current custodian. Custody itself only
// moves on the following overtake.
func Release(s Shipment, c Contract, tx ReleaseTx) (Shipment, ShipmentReleaseEvent, error) {
	if err := Admits(s.Status, TransitionRelease); err != nil {
		return Shipment{}, ShipmentReleaseEvent{}, err
	}
	current, err := CurrentCustodian(c)
	if err != nil {
		return Shipment{}, ShipmentReleaseEvent{}, err
	}
	if tx.ShipperOld != current {
		return Shipment{}, ShipmentReleaseEvent{}, ErrUnauthorizedCustodian
	}
	out := s.Clone()
	out.Status = StatusReleased
	return out, ShipmentReleaseEvent{
		ShipperOld: tx.ShipperOld,
		ShipperNew: tx.ShipperNew,
		ShipmentID: s.ID,
	}, nil
}

// Overtake puts a released shipment in transit and appends the new shipper to the
// custody chain. Appending the shipper that already holds custody is allowed.
func Overtake(s Shipment, c Contract, tx OvertakeTx) (Shipment, Contract, ShipmentOvertakeEvent, error) {
	if err := Admits(s.Status, TransitionOvertake); err != nil {
		return Shipment{}, Contract{}, ShipmentOvertakeEvent{}, err
	}
	out := s.Clone()
	out.Status = StatusInTransit
	return out, AppendCustodian(c, tx.ShipperNew), ShipmentOvertakeEvent{
		ShipperOld: tx.ShipperOld,
		ShipperNew: tx.ShipperNew,
		ShipmentID: s.ID,
	}, nil
}
