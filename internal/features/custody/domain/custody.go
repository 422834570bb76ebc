package domain

// CurrentCustodian returns the shipper currently holding the shipment.
func CurrentCustodian(c Contract) (string, error) {
	if len(c.Shippers) == 0 {
		return "", ErrEmptyCustodyChain
	}
	return c.Shippers[len(c.Shippers)-1], nil
}

// AppendCustodian returns a copy of c with shipper appended to the custody chain.
// It performs no guard; legality of the hand-over is checked by the overtake transition.
func AppendCustodian(c Contract, shipper string) Contract {
	out := c.Clone()
	out.Shippers = append(out.Shippers, shipper)
	return out
}
