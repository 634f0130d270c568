// Package billing holds the reference entities consumed by the billing
// report: customers, products, shipping zones, promotions and orders.
// Entities are plain values and are not modified after loading.
package billing
