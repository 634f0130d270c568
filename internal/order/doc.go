// Package order prices order lines and aggregates them per customer.
package order
