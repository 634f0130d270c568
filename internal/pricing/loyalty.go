package pricing

import (
	"math"

	"github.com/noah-isme/toko-billing/internal/billing"
)

// LoyaltyPoints accumulates qty × unit price × ratio per customer id. The
// order's own unit price is used, not the catalog price.
func LoyaltyPoints(orders []billing.Order, ratio float64) map[string]float64 {
	points := make(map[string]float64)
	for _, o := range orders {
		points[o.CustomerID] += o.Qty * o.UnitPrice * ratio
	}
	return points
}

// LoyaltyDiscount converts accumulated points into a discount amount.
func LoyaltyDiscount(points float64) float64 {
	switch {
	case points > 500:
		return math.Min(points*0.15, 100)
	case points > 100:
		return math.Min(points*0.10, 50)
	default:
		return 0
	}
}
