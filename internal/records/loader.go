package records

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-billing/internal/billing"
)

// Dataset bundles every collection the report needs.
type Dataset struct {
	Customers  map[string]billing.Customer
	Products   map[string]billing.Product
	Zones      map[string]billing.ShippingZone
	Promotions map[string]billing.Promotion
	Orders     []billing.Order
}

// Load reads all five collections from src. Any failure other than a missing
// promotions file aborts the load.
func Load(src Source, logger zerolog.Logger) (Dataset, error) {
	var (
		ds  Dataset
		err error
	)
	if ds.Customers, err = LoadCustomers(src); err != nil {
		return Dataset{}, fmt.Errorf("customers: %w", err)
	}
	if ds.Products, err = LoadProducts(src); err != nil {
		return Dataset{}, fmt.Errorf("products: %w", err)
	}
	if ds.Zones, err = LoadShippingZones(src); err != nil {
		return Dataset{}, fmt.Errorf("shipping zones: %w", err)
	}
	if ds.Promotions, err = LoadPromotions(src); err != nil {
		return Dataset{}, fmt.Errorf("promotions: %w", err)
	}
	if ds.Orders, err = LoadOrders(src); err != nil {
		return Dataset{}, fmt.Errorf("orders: %w", err)
	}

	logger.Debug().
		Int("customers", len(ds.Customers)).
		Int("products", len(ds.Products)).
		Int("zones", len(ds.Zones)).
		Int("promotions", len(ds.Promotions)).
		Int("orders", len(ds.Orders)).
		Msg("records loaded")
	return ds, nil
}

// LoadCustomers reads customers keyed by id. Columns: id,name,level,zone,currency.
func LoadCustomers(src Source) (map[string]billing.Customer, error) {
	rows, err := src.Rows(CustomersFile)
	if err != nil {
		return nil, err
	}
	out := make(map[string]billing.Customer, len(rows))
	for _, row := range rows {
		c := ParseCustomer(row)
		out[c.ID] = c
	}
	return out, nil
}

// LoadProducts reads products keyed by id. Columns: id,name,desc,price,weight,taxable.
func LoadProducts(src Source) (map[string]billing.Product, error) {
	rows, err := src.Rows(ProductsFile)
	if err != nil {
		return nil, err
	}
	out := make(map[string]billing.Product, len(rows))
	for _, row := range rows {
		p := ParseProduct(row)
		out[p.ID] = p
	}
	return out, nil
}

// LoadShippingZones reads zones keyed by name. Columns: zone,base,perKg.
func LoadShippingZones(src Source) (map[string]billing.ShippingZone, error) {
	rows, err := src.Rows(ZonesFile)
	if err != nil {
		return nil, err
	}
	out := make(map[string]billing.ShippingZone, len(rows))
	for _, row := range rows {
		z := ParseShippingZone(row)
		out[z.Name] = z
	}
	return out, nil
}

// LoadPromotions reads promotions keyed by code. Columns: code,type,value,active.
// A missing file yields an empty map.
func LoadPromotions(src Source) (map[string]billing.Promotion, error) {
	rows, err := src.Rows(PromotionsFile)
	if err != nil {
		if IsMissing(err) {
			return map[string]billing.Promotion{}, nil
		}
		return nil, err
	}
	out := make(map[string]billing.Promotion, len(rows))
	for _, row := range rows {
		p := ParsePromotion(row)
		out[p.Code] = p
	}
	return out, nil
}

// LoadOrders reads orders in file order. Columns: id,customerId,productId,qty,price,date,promo,time.
func LoadOrders(src Source) ([]billing.Order, error) {
	rows, err := src.Rows(OrdersFile)
	if err != nil {
		return nil, err
	}
	out := make([]billing.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, ParseOrder(row))
	}
	return out, nil
}

// ParseCustomer maps a customers row, defaulting level, zone and currency.
func ParseCustomer(row []string) billing.Customer {
	return billing.Customer{
		ID:           column(row, 0),
		Name:         column(row, 1),
		Level:        billing.Level(valueOrDefault(column(row, 2), string(billing.DefaultLevel))),
		ShippingZone: valueOrDefault(column(row, 3), billing.DefaultZone),
		Currency:     billing.Currency(valueOrDefault(column(row, 4), string(billing.DefaultCurrency))),
	}
}

// ParseProduct maps a products row. Weight falls back to 1 when empty or not numeric.
func ParseProduct(row []string) billing.Product {
	return billing.Product{
		ID:          column(row, 0),
		Name:        column(row, 1),
		Description: column(row, 2),
		Price:       parseNumber(column(row, 3)),
		Weight:      validNumberOr(column(row, 4), billing.DefaultWeight),
		Taxable:     column(row, 5) == "true",
	}
}

// ParseShippingZone maps a shipping_zones row. PerKg falls back to 0.5 when empty.
func ParseShippingZone(row []string) billing.ShippingZone {
	return billing.ShippingZone{
		Name:  column(row, 0),
		Base:  parseNumber(column(row, 1)),
		PerKg: numberOr(column(row, 2), billing.DefaultPerKg),
	}
}

// ParsePromotion maps a promotions row. Only the literal "false" deactivates a promotion.
func ParsePromotion(row []string) billing.Promotion {
	return billing.Promotion{
		Code:   column(row, 0),
		Kind:   billing.PromotionKind(column(row, 1)),
		Value:  parseNumber(column(row, 2)),
		Active: column(row, 3) != "false",
	}
}

// ParseOrder maps an orders row. Identifiers are taken as-is.
func ParseOrder(row []string) billing.Order {
	return billing.Order{
		ID:         column(row, 0),
		CustomerID: column(row, 1),
		ProductID:  column(row, 2),
		Qty:        parseWhole(column(row, 3)),
		UnitPrice:  parseNumber(column(row, 4)),
		Date:       column(row, 5),
		PromoCode:  column(row, 6),
		Time:       valueOrDefault(column(row, 7), billing.DefaultOrderTime),
	}
}
