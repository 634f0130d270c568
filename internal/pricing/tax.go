package pricing

import "github.com/noah-isme/toko-billing/internal/billing"

// TaxItem is an ordered line as seen by the tax computation.
type TaxItem struct {
	Qty     float64
	Price   float64
	Taxable bool
}

// TaxItemFor resolves the tax view of an order. Orders whose product is not
// in the catalog are taxable at their own unit price, in both tax branches.
// The legacy report skipped them in the mixed branch; they are taxed here.
func TaxItemFor(o billing.Order, product *billing.Product) TaxItem {
	if product == nil {
		return TaxItem{Qty: o.Qty, Price: o.UnitPrice, Taxable: true}
	}
	return TaxItem{Qty: o.Qty, Price: product.Price, Taxable: product.Taxable}
}

// Tax computes the tax due for a customer. When every item is taxable the
// discounted amount is taxed. Otherwise only taxable items are taxed, at
// their undiscounted catalog value. Both branches round once at the end.
func Tax(items []TaxItem, taxableAmount, rate float64) float64 {
	if allTaxable(items) {
		return Round2(taxableAmount * rate)
	}
	var tax float64
	for _, it := range items {
		if !it.Taxable {
			continue
		}
		tax += it.Qty * it.Price * rate
	}
	return Round2(tax)
}

func allTaxable(items []TaxItem) bool {
	for _, it := range items {
		if !it.Taxable {
			return false
		}
	}
	return true
}
