// Package pricing implements the billing rules: loyalty points and
// discount, tiered volume discount, discount capping, tax and shipping.
//
// All functions are pure. Amounts are float64 and are only rounded where a
// figure is presented (tax and total).
package pricing
