// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrNotFound indicates that a document does not exist, while
// ErrDuplicate signals that an insert collided with a unique index
// (username, email or imdb_id).
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no document matches the query. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique index.
// Handlers should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate key")

// oid parses a hex document id. Malformed ids map to ErrNotFound so that
// handlers respond 404 instead of 500 for garbage path parameters.
func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return v, nil
}

// wrapFind normalizes driver errors on single-document reads.
func wrapFind(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// wrapInsert normalizes driver errors on inserts.
func wrapInsert(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
