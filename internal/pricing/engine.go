package pricing

import "github.com/noah-isme/toko-billing/internal/billing"

// Input carries the aggregated figures of one customer.
type Input struct {
	Subtotal       float64
	Weight         float64
	Level          billing.Level
	Zone           string
	FirstOrderDate string
	LoyaltyPoints  float64
	Items          []TaxItem
}

// Summary aggregates computed pricing components.
type Summary struct {
	Subtotal        float64
	VolumeDiscount  float64
	LoyaltyDiscount float64
	Discount        float64
	Taxable         float64
	Tax             float64
	Shipping        float64
	Total           float64
}

// Compute applies discounts, tax and shipping to a customer's aggregate.
// The taxable amount is not clamped and may be negative.
func (p Policy) Compute(in Input, zones map[string]billing.ShippingZone) Summary {
	volume := VolumeDiscount(in.Subtotal, in.Level, in.FirstOrderDate)
	loyalty := LoyaltyDiscount(in.LoyaltyPoints)
	volume, loyalty, discount := ProrateDiscounts(volume, loyalty, p.MaxDiscount)

	taxable := in.Subtotal - discount
	tax := Tax(in.Items, taxable, p.TaxRate)
	shipping := p.ShippingCost(in.Subtotal, in.Weight, in.Zone, zones)

	return Summary{
		Subtotal:        in.Subtotal,
		VolumeDiscount:  volume,
		LoyaltyDiscount: loyalty,
		Discount:        discount,
		Taxable:         taxable,
		Tax:             tax,
		Shipping:        shipping,
		Total:           Round2(taxable + tax + shipping),
	}
}
