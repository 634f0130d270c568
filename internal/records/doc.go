// Package records loads the billing reference data from CSV sources into
// typed entities.
//
// Every file starts with a header row that is discarded. Empty columns fall
// back to fixed defaults; numeric columns that cannot be parsed become NaN
// and are passed through unchanged.
package records
