package domain

import "strings"

// ParticipantRole is the part a participant plays around a contract.
type ParticipantRole string

const (
	RoleDispatcher ParticipantRole = "DISPATCHER"
	RoleRecipient  ParticipantRole = "RECIPIENT"
	RoleShipper    ParticipantRole = "SHIPPER"
	RoleInsurer    ParticipantRole = "INSURER"
	RoleDevice     ParticipantRole = "DEVICE"
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (ParticipantRole, bool) {
	r := ParticipantRole(strings.ToUpper(s))
	switch r {
	case RoleDispatcher, RoleRecipient, RoleShipper, RoleInsurer, RoleDevice:
		return r, true
	}
	return "", false
}

// Address is the postal location of a participant.
type Address struct {
	Country string `json:"country"`
}

// Participant is reference data for the parties and assets a shipment refers to.
type Participant struct {
	// ID is the participant reference (an e-mail for parties, a label for devices).
	ID string `json:"id"`
	// Role is the participant type.
	Role ParticipantRole `json:"role"`
	// Address is where the participant is located.
	Address Address `json:"address"`
}
