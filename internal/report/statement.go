package report

import (
	"github.com/noah-isme/toko-billing/internal/billing"
	"github.com/noah-isme/toko-billing/internal/order"
	"github.com/noah-isme/toko-billing/internal/pricing"
	"github.com/noah-isme/toko-billing/internal/records"
)

// Statement is the computed bill of one customer.
type Statement struct {
	Customer      billing.Customer
	Weight        float64
	LoyaltyPoints float64
	pricing.Summary
}

// BuildStatements prices every aggregated customer in id order. Aggregated
// ids without a customer record are left out of the statements and returned
// as orphans; their orders still count towards loyalty points.
func BuildStatements(ds records.Dataset, policy pricing.Policy) ([]Statement, []string) {
	loyalty := pricing.LoyaltyPoints(ds.Orders, policy.LoyaltyRatio)
	totals := order.AggregateOrders(ds.Orders, ds.Products, ds.Promotions)

	var (
		statements = make([]Statement, 0, totals.Len())
		orphans    []string
	)
	for _, id := range totals.CustomerIDs() {
		cust, ok := ds.Customers[id]
		if !ok {
			orphans = append(orphans, id)
			continue
		}
		agg, _ := totals.Get(id)

		summary := policy.Compute(pricing.Input{
			Subtotal:       agg.Subtotal,
			Weight:         agg.Weight,
			Level:          cust.Level,
			Zone:           cust.ShippingZone,
			FirstOrderDate: agg.FirstOrderDate,
			LoyaltyPoints:  loyalty[id],
			Items:          taxItems(agg.Items, ds.Products),
		}, ds.Zones)

		statements = append(statements, Statement{
			Customer:      cust,
			Weight:        agg.Weight,
			LoyaltyPoints: loyalty[id],
			Summary:       summary,
		})
	}
	return statements, orphans
}

func taxItems(orders []billing.Order, products map[string]billing.Product) []pricing.TaxItem {
	items := make([]pricing.TaxItem, 0, len(orders))
	for _, o := range orders {
		var product *billing.Product
		if p, ok := products[o.ProductID]; ok {
			product = &p
		}
		items = append(items, pricing.TaxItemFor(o, product))
	}
	return items
}
