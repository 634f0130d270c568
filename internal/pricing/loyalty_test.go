package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-billing/internal/billing"
	"github.com/noah-isme/toko-billing/internal/pricing"
)

func TestLoyaltyPoints(t *testing.T) {
	t.Parallel()

	orders := []billing.Order{
		{CustomerID: "c1", Qty: 2, UnitPrice: 100},
		{CustomerID: "c1", Qty: 1, UnitPrice: 50},
		{CustomerID: "c2", Qty: 5, UnitPrice: 20},
	}

	points := pricing.LoyaltyPoints(orders, 0.1)
	require.Equal(t, map[string]float64{"c1": 25, "c2": 10}, points)
}

func TestLoyaltyPointsEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, pricing.LoyaltyPoints(nil, 0.01))
}

func TestLoyaltyDiscount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 90.0, pricing.LoyaltyDiscount(600))
	require.Equal(t, 20.0, pricing.LoyaltyDiscount(200))
	require.Equal(t, 0.0, pricing.LoyaltyDiscount(50))
	require.Equal(t, 0.0, pricing.LoyaltyDiscount(100))
	require.Equal(t, 50.0, pricing.LoyaltyDiscount(500))
	require.Equal(t, 100.0, pricing.LoyaltyDiscount(5000))
}

func TestLoyaltyDiscountMonotonicAndCapped(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for p := 0.0; p <= 2000; p += 0.5 {
		d := pricing.LoyaltyDiscount(p)
		if d < prev {
			t.Fatalf("discount decreased at %.1f points: %f < %f", p, d, prev)
		}
		if d > 100 {
			t.Fatalf("discount above cap at %.1f points: %f", p, d)
		}
		prev = d
	}
}
