package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrPermissionDenied is returned when the backing store rejects an operation
// due to its access-control rules.
var ErrPermissionDenied = errors.New("permission denied")

// Document is a raw document as held by the store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Update describes a single field update. Value may be a plain value or one of
// the transform sentinels below.
type Update struct {
	Path  string
	Value interface{}
}

// ServerTimestampValue is a sentinel replaced by the store's own wall-clock
// time at commit.
type ServerTimestampValue struct{}

// ServerTimestamp is the timestamp sentinel used for createdAt/updatedAt fields.
var ServerTimestamp = ServerTimestampValue{}

// ArrayUnionValue atomically adds elements to an array field, skipping
// elements already present.
type ArrayUnionValue struct {
	Elems []interface{}
}

// ArrayUnion builds an atomic add-unique-elements transform
func ArrayUnion(elems ...interface{}) ArrayUnionValue {
	return ArrayUnionValue{Elems: elems}
}

// ArrayRemoveValue atomically removes all matching elements from an array field.
type ArrayRemoveValue struct {
	Elems []interface{}
}

// ArrayRemove builds an atomic remove-elements transform
func ArrayRemove(elems ...interface{}) ArrayRemoveValue {
	return ArrayRemoveValue{Elems: elems}
}

// Client defines the document-store operations the platform relies on.
// Implementations exist for Firestore, MongoDB, and an in-memory store used in
// tests and credential-less development runs.
type Client interface {
	// Add creates a document with a store-assigned identifier.
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Set creates or replaces a document with a caller-chosen identifier.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Get retrieves a document by identifier. Returns ErrNotFound if absent.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// List returns all documents in a collection ordered by the given field.
	List(ctx context.Context, collection, orderBy string, desc bool) ([]*Document, error)

	// Query returns documents whose field equals value.
	Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error)

	// Update applies field updates to an existing document. Returns
	// ErrNotFound if the document is absent.
	Update(ctx context.Context, collection, id string, updates []Update) error

	// Delete removes a document. Deleting an absent document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Close releases any resources held by the store.
	Close() error
}
