package domain

import "errors"

var (
	// ErrInvalidTransition is returned when the requested transition is not legal from the current status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnauthorizedCustodian is returned when the asserted prior shipper is not the current custodian.
	ErrUnauthorizedCustodian = errors.New("only the current shipper can release a shipment")
	// ErrShipmentAlreadyArrived is returned when a terminal shipment would be mutated.
	ErrShipmentAlreadyArrived = errors.New("shipment already arrived, no further updates allowed")
	// ErrEmptyCustodyChain signals a contract without shippers. It is an invariant violation.
	ErrEmptyCustodyChain = errors.New("custody chain is empty")
	// ErrInvalidStatus is returned for a shipment carrying a status outside the known set.
	ErrInvalidStatus = errors.New("invalid shipment status")
	// ErrEntityNotFound is returned by stores when the requested entity does not exist.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrStorage wraps any other store failure.
	ErrStorage = errors.New("storage failure")
)

// Stable error codes exposed to callers.
const (
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeUnauthorizedCustodian  = "UNAUTHORIZED_CUSTODIAN"
	CodeShipmentAlreadyArrived = "SHIPMENT_ALREADY_ARRIVED"
	CodeEmptyCustodyChain      = "EMPTY_CUSTODY_CHAIN"
	CodeInvalidStatus          = "INVALID_STATUS"
	CodeEntityNotFound         = "ENTITY_NOT_FOUND"
	CodeStorage                = "STORAGE_ERROR"
	CodeUnknown                = "UNKNOWN"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInvalidTransition, CodeInvalidTransition},
	{ErrUnauthorizedCustodian, CodeUnauthorizedCustodian},
	{ErrShipmentAlreadyArrived, CodeShipmentAlreadyArrived},
	{ErrEmptyCustodyChain, CodeEmptyCustodyChain},
	{ErrInvalidStatus, CodeInvalidStatus},
	{ErrEntityNotFound, CodeEntityNotFound},
	{ErrStorage, CodeStorage},
}

// Code maps err to its stable error code, or CodeUnknown.
func Code(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeUnknown
}
