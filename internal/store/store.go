// Package store is the persistence abstraction shared by every module.
// Records live in named collections; two interchangeable backends exist,
// one on MongoDB and one on flat JSON files. Handlers and services only
// ever see the Store interface.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindOne when no record matches the filter.
var ErrNotFound = errors.New("record not found")

// Filter matches records whose fields equal every key/value pair.
// Equality only; an empty filter matches everything.
type Filter map[string]any

// Patch describes an update: Set assigns explicit field values, Inc adds a
// delta to numeric fields (creating them at the delta when absent).
type Patch struct {
	Set map[string]any
	Inc map[string]int64
}

// Store is a minimal collection-oriented record store.
//
// A missing collection behaves as an empty one, never as an error.
// Update applies the patch to every matching record.
type Store interface {
	// FindOne decodes the first matching record into out (a struct pointer).
	FindOne(ctx context.Context, collection string, filter Filter, out any) error
	// FindMany decodes matching records into out (a pointer to a slice),
	// truncated to limit when limit > 0. Ordering is the caller's job.
	FindMany(ctx context.Context, collection string, filter Filter, limit int64, out any) error
	// Insert appends a new record, creating the collection if needed.
	Insert(ctx context.Context, collection string, doc any) error
	// Update patches all matching records and reports how many matched.
	Update(ctx context.Context, collection string, filter Filter, patch Patch) (int64, error)
	// Count reports the number of matching records.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	// Close releases the backing resources. The handle is opened once at
	// startup, injected everywhere, and closed at shutdown.
	Close(ctx context.Context) error
}
