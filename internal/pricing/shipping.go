package pricing

import "github.com/noah-isme/toko-billing/internal/billing"

const (
	remoteSurcharge   = 1.2
	overweightLimit   = 20
	overweightPerKg   = 0.25
	heavyParcelLimit  = 10
	mediumParcelLimit = 5
	mediumParcelPerKg = 0.3
)

// ShippingCost prices a shipment with the default policy.
func ShippingCost(subtotal, weight float64, zoneName string, zones map[string]billing.ShippingZone) float64 {
	return DefaultPolicy().ShippingCost(subtotal, weight, zoneName, zones)
}

// ShippingCost prices a shipment. Below the free shipping limit the zone base
// is charged plus a weight surcharge, raised by 20% for remote zones.
// Otherwise only parcels heavier than 20kg are charged. A NaN subtotal is
// never below the limit.
func (p Policy) ShippingCost(subtotal, weight float64, zoneName string, zones map[string]billing.ShippingZone) float64 {
	zone, ok := zones[zoneName]
	if !ok {
		zone = billing.DefaultShippingZone
	}

	if !(subtotal < p.ShippingLimit) {
		if weight > overweightLimit {
			return (weight - overweightLimit) * overweightPerKg
		}
		return 0
	}

	var ship float64
	switch {
	case weight > heavyParcelLimit:
		ship = zone.Base + (weight-heavyParcelLimit)*zone.PerKg
	case weight > mediumParcelLimit:
		ship = zone.Base + (weight-mediumParcelLimit)*mediumParcelPerKg
	default:
		ship = zone.Base
	}
	if isRemoteZone(zoneName) {
		ship *= remoteSurcharge
	}
	return ship
}

func isRemoteZone(name string) bool {
	return name == "ZONE3" || name == "ZONE4"
}
