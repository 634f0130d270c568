package report

import (
	"fmt"
	"strings"

	"github.com/noah-isme/toko-billing/internal/pricing"
)

// Format renders the statements as newline separated blocks. Each block
// ends with an empty line.
func Format(statements []Statement) string {
	lines := make([]string, 0, len(statements)*11)
	for _, s := range statements {
		lines = append(lines, formatStatement(s)...)
	}
	return strings.Join(lines, "\n")
}

func formatStatement(s Statement) []string {
	c := s.Customer
	return []string{
		fmt.Sprintf("Customer: %s (%s)", c.Name, c.ID),
		fmt.Sprintf("Level: %s | Zone: %s | Currency: %s", c.Level, c.ShippingZone, c.Currency),
		"Subtotal: " + money(s.Subtotal),
		"Discount: " + money(s.Discount),
		"  - Volume discount: " + money(s.VolumeDiscount),
		"  - Loyalty discount: " + money(s.LoyaltyDiscount),
		"Tax: " + money(s.Tax),
		fmt.Sprintf("Shipping (%s, %skg): %s", c.ShippingZone, pricing.FormatFixed(s.Weight, 1), money(s.Shipping)),
		fmt.Sprintf("Total: %s %s", money(s.Total), c.Currency),
		"Loyalty Points: " + pricing.FormatWhole(s.LoyaltyPoints),
		"",
	}
}

func money(v float64) string {
	return pricing.FormatFixed(v, 2)
}
