package pricing

// Policy is the rate table applied to every customer in a report run.
type Policy struct {
	TaxRate       float64
	ShippingLimit float64
	LoyaltyRatio  float64
	MaxDiscount   float64
}

// DefaultPolicy returns the standard billing rates.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:       0.2,
		ShippingLimit: 50,
		LoyaltyRatio:  0.01,
		MaxDiscount:   200,
	}
}
