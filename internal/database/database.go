// Package database provides access to the remote document store backing
// the catalog. The Store interface is the full capability surface; the
// Firestore type implements it against Cloud Firestore, and Memory is a
// substitute implementation used by tests.
package database

import (
	"context"
	"errors"
)

// Collection names used by the catalog.
const (
	CollectionAuthors = "authors"
	CollectionBooks   = "books"
)

// ErrNotFound is returned by GetByID when no document exists for the id.
// It is a return-value condition, never an I/O failure.
var ErrNotFound = errors.New("document not found")

// Document is a stored record: the store-assigned id plus the raw body.
// The id is the document's identity and is never part of the body.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the capability set over the document store. Implementations
// confine side effects to the store itself and do no local caching;
// I/O failures propagate untouched to the caller.
type Store interface {
	GetByID(ctx context.Context, collection, id string) (Document, error)
	QueryEquals(ctx context.Context, collection, field string, value any) ([]Document, error)
	QueryAll(ctx context.Context, collection string) ([]Document, error)
	Insert(ctx context.Context, collection string, fields map[string]any) (string, error)
	UpdateMerge(ctx context.Context, collection, id string, partial map[string]any) error
	DeleteByID(ctx context.Context, collection, id string) error
}
