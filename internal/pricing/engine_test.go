package pricing

import (
	"testing"

	"github.com/noah-isme/toko-billing/internal/billing"
)

func TestComputePremiumCustomer(t *testing.T) {
	in := Input{
		Subtotal:       200,
		Weight:         2,
		Level:          billing.LevelPremium,
		Zone:           "ZONE1",
		FirstOrderDate: "2026-01-16",
		LoyaltyPoints:  2,
		Items:          []TaxItem{{Qty: 2, Price: 100, Taxable: true}},
	}
	s := DefaultPolicy().Compute(in, nil)
	if s.Discount != 20 || s.Tax != 36 || s.Shipping != 0 || s.Total != 216 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestComputeCapsDiscount(t *testing.T) {
	in := Input{
		Subtotal:      2000,
		Level:         billing.LevelPremium,
		Zone:          "ZONE1",
		LoyaltyPoints: 1000,
		Items:         []TaxItem{{Qty: 1, Price: 2000, Taxable: true}},
	}
	s := DefaultPolicy().Compute(in, nil)
	if s.Discount != 200 {
		t.Fatalf("expected discount capped at 200, got %f", s.Discount)
	}
	if s.Taxable != 1800 || s.Tax != 360 || s.Total != 2160 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestComputeNegativeTaxableIsKept(t *testing.T) {
	in := Input{
		Subtotal:      20,
		Weight:        1,
		Level:         billing.LevelBasic,
		Zone:          "ZONE1",
		LoyaltyPoints: 600,
		Items:         []TaxItem{{Qty: 1, Price: 20, Taxable: true}},
	}
	s := DefaultPolicy().Compute(in, nil)
	if s.Taxable != -70 {
		t.Fatalf("expected taxable -70, got %f", s.Taxable)
	}
	if s.Tax != -14 || s.Total != -79 {
		t.Fatalf("unexpected summary %+v", s)
	}
}
