package order

import (
	"sort"
	"strconv"
	"strings"

	"github.com/noah-isme/toko-billing/internal/billing"
)

const (
	earlyHourLimit    = 10
	earlyHourDiscount = 0.97
)

// Aggregate accumulates the orders of one customer.
type Aggregate struct {
	CustomerID     string
	Subtotal       float64
	Weight         float64
	Items          []billing.Order
	FirstOrderDate string
}

// Totals holds the per-customer aggregates of a report run.
type Totals struct {
	byCustomer map[string]*Aggregate
}

// Get returns the aggregate for a customer id.
func (t *Totals) Get(customerID string) (*Aggregate, bool) {
	if t == nil {
		return nil, false
	}
	agg, ok := t.byCustomer[customerID]
	return agg, ok
}

// CustomerIDs returns the aggregated customer ids in lexicographic order.
func (t *Totals) CustomerIDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, 0, len(t.byCustomer))
	for id := range t.byCustomer {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports how many customers have at least one order.
func (t *Totals) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCustomer)
}

// AggregateOrders groups orders by customer id in file order. Orders for
// customers that are not loaded are aggregated like any other.
func AggregateOrders(orders []billing.Order, products map[string]billing.Product, promotions map[string]billing.Promotion) *Totals {
	totals := &Totals{byCustomer: make(map[string]*Aggregate)}
	for _, o := range orders {
		product := lookupProduct(products, o.ProductID)
		line := LinePrice(o, product, promotions)

		weight := billing.DefaultWeight
		if product != nil {
			weight = product.Weight
		}

		agg, ok := totals.byCustomer[o.CustomerID]
		if !ok {
			agg = &Aggregate{CustomerID: o.CustomerID, FirstOrderDate: o.Date}
			totals.byCustomer[o.CustomerID] = agg
		}
		agg.Subtotal += line
		agg.Weight += weight * o.Qty
		agg.Items = append(agg.Items, o)
	}
	return totals
}

// LinePrice prices one order: quantity times the catalog price (or the
// order's unit price when the product is unknown), reduced by an active
// promotion and then by 3% for orders placed before 10:00.
func LinePrice(o billing.Order, product *billing.Product, promotions map[string]billing.Promotion) float64 {
	price := o.UnitPrice
	if product != nil {
		price = product.Price
	}
	line := o.Qty * price

	if promo, ok := activePromotion(promotions, o.PromoCode); ok {
		if promo.Percentage() {
			line *= 1 - promo.Value/100
		} else {
			line -= promo.Value * o.Qty
		}
	}

	if hour, ok := orderHour(o.Time); ok && hour < earlyHourLimit {
		line *= earlyHourDiscount
	}
	return line
}

func lookupProduct(products map[string]billing.Product, id string) *billing.Product {
	p, ok := products[id]
	if !ok {
		return nil
	}
	return &p
}

func activePromotion(promotions map[string]billing.Promotion, code string) (billing.Promotion, bool) {
	if code == "" {
		return billing.Promotion{}, false
	}
	promo, ok := promotions[code]
	if !ok || !promo.Active {
		return billing.Promotion{}, false
	}
	return promo, true
}

// orderHour reads the leading integer of an "HH:MM" time.
func orderHour(value string) (int, bool) {
	head, _, _ := strings.Cut(value, ":")
	head = strings.TrimSpace(head)
	end := 0
	for end < len(head) && (head[end] >= '0' && head[end] <= '9' || end == 0 && (head[end] == '-' || head[end] == '+')) {
		end++
	}
	hour, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0, false
	}
	return hour, true
}
