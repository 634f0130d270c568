// Package report generates the per-customer billing report: it loads the
// reference data, aggregates orders, applies the pricing rules and renders
// one text block per customer, ordered by customer id.
package report
