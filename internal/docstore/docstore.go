package docstore

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by callers that require a durable store when
// the service is running without one. Running storeless is a legitimate
// state, not a connection failure.
var ErrNotConfigured = errors.New("document store not configured")

// Document is one record in a collection: the opaque JSON payload plus the
// identifier the store assigned at insert time.
type Document struct {
	ID   string
	Data []byte
}

// Store is a schema-flexible document collection backend.
type Store interface {
	// List returns every document in the collection, in insertion order.
	List(ctx context.Context, collection string) ([]Document, error)

	// Insert stores data as a new document and returns its assigned id.
	Insert(ctx context.Context, collection string, data []byte) (string, error)

	// Project returns the string value of one top-level field for every
	// document in the collection, in insertion order. Documents missing
	// the field yield "".
	Project(ctx context.Context, collection, field string) ([]string, error)

	// Collections lists the distinct collection names currently present,
	// sorted ascending.
	Collections(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
}
