// Package storage abstracts persistence of the event collection.
//
// The collection is stored as one opaque blob; the layout engine never
// touches storage, the orchestrating layer loads once at startup and
// writes through after every successful mutation.
package storage

import (
	"calgrid/internal/model"
)

// Provider loads and saves the full event collection.
type Provider interface {
	// Load returns the stored collection. Missing or corrupt data loads
	// as the empty collection; a parse failure is never propagated.
	Load() (model.EventList, error)

	// Save persists the full collection, replacing any previous state.
	Save(model.EventList) error
}
