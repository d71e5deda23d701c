// Package store persists the waste-log record set. The backing data is the
// single source of truth: callers re-read it on every interaction rather
// than caching records in memory.
package store

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/model"
)

// ErrNegativeQuantity is returned by Append when any quantity is below zero.
// Upper-range validation ([0,1000] in the entry form) is the caller's job.
var ErrNegativeQuantity = errors.New("waste quantities must be non-negative")

// Store is the record persistence contract. Implementations replace the
// whole dataset on write; there is no row-level update or delete.
type Store interface {
	// Load returns all records in insertion order, seeding the backing
	// storage with the starter dataset if it does not exist yet.
	Load() ([]model.WasteRecord, error)

	// Append stamps a new record with the current date, persists the grown
	// set, and returns it.
	Append(recyclingKg, compostKg, landfillKg float64) ([]model.WasteRecord, error)

	// Replace persists the given records as the complete new dataset.
	Replace(records []model.WasteRecord) error
}

// ReadError means the backing storage exists but could not be read or
// parsed (missing columns, non-numeric values, unreadable file).
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading waste log %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError means persisting failed. The prior dataset is left intact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing waste log %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// checkQuantities rejects negative inputs before a record is constructed.
func checkQuantities(recyclingKg, compostKg, landfillKg float64) error {
	if recyclingKg < 0 || compostKg < 0 || landfillKg < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
