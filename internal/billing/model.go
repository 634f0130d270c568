package billing

// Level is the customer tier used by the volume discount rules.
type Level string

const (
	LevelBasic   Level = "BASIC"
	LevelPremium Level = "PREMIUM"
)

// Currency is the display currency token printed next to totals.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// PromotionKind selects how a promotion reduces an order line.
type PromotionKind string

const (
	PromotionPercentage PromotionKind = "PERCENTAGE"
	PromotionFixed      PromotionKind = "FIXED"
)

// Default values applied by the loaders when a column is empty.
const (
	DefaultLevel     = LevelBasic
	DefaultZone      = "ZONE1"
	DefaultCurrency  = CurrencyEUR
	DefaultOrderTime = "12:00"
	DefaultWeight    = 1.0
	DefaultPerKg     = 0.5
)

// DefaultShippingZone is used when a customer's zone is not in the zone table.
var DefaultShippingZone = ShippingZone{Base: 5, PerKg: DefaultPerKg}

// Customer is a billed account.
type Customer struct {
	ID           string
	Name         string
	Level        Level
	ShippingZone string
	Currency     Currency
}

// Product is a catalog entry referenced by orders.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Weight      float64
	Taxable     bool
}

// ShippingZone is a shipping pricing bucket.
type ShippingZone struct {
	Name  string
	Base  float64
	PerKg float64
}

// Promotion is a discount code that may be attached to an order.
type Promotion struct {
	Code   string
	Kind   PromotionKind
	Value  float64
	Active bool
}

// Percentage reports whether the promotion reduces the line by a percentage.
// Every other kind is treated as a fixed per-unit amount.
func (p Promotion) Percentage() bool {
	return p.Kind == PromotionPercentage
}

// Order is a single order line as read from the orders file.
//
// Qty holds a whole number; it is NaN when the source value is not numeric so
// that malformed rows propagate into the arithmetic instead of being rejected.
type Order struct {
	ID         string
	CustomerID string
	ProductID  string
	Qty        float64
	UnitPrice  float64
	Date       string
	Time       string
	PromoCode  string
}

// HasPromo reports whether the order references a promotion code.
func (o Order) HasPromo() bool {
	return o.PromoCode != ""
}
