package pricing

import (
	"time"

	"github.com/noah-isme/toko-billing/internal/billing"
)

const (
	dateLayout       = "2006-01-02"
	weekendSurcharge = 1.05
)

// VolumeDiscount returns the tiered discount for a customer subtotal. The
// first matching tier wins. A first order placed on a Saturday or Sunday
// raises the discount by 5%.
func VolumeDiscount(subtotal float64, level billing.Level, firstOrderDate string) float64 {
	var discount float64
	switch {
	case subtotal > 1000 && level == billing.LevelPremium:
		discount = subtotal * 0.20
	case subtotal > 500:
		discount = subtotal * 0.15
	case subtotal > 100:
		discount = subtotal * 0.10
	case subtotal > 50:
		discount = subtotal * 0.05
	}
	if isWeekend(firstOrderDate) {
		discount *= weekendSurcharge
	}
	return discount
}

// ProrateDiscounts scales both components by the same ratio when their sum
// exceeds limit, so that the returned total equals limit exactly.
func ProrateDiscounts(volume, loyalty, limit float64) (float64, float64, float64) {
	total := volume + loyalty
	if total > limit {
		ratio := limit / total
		volume *= ratio
		loyalty *= ratio
		total = limit
	}
	return volume, loyalty, total
}

func isWeekend(date string) bool {
	if date == "" {
		return false
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
