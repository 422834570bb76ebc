package domain

// AppendException returns a copy of s with exc appended to its exception log.
func AppendException(s Shipment, exc ShipmentException) (Shipment, error) {
	if s.Status.Terminal() {
		return Shipment{}, ErrShipmentAlreadyArrived
	}
	out := s.Clone()
	out.Exceptions = append(out.Exceptions, exc)
	return out, nil
}
