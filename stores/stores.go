// Package stores holds the persistence layer: one interface per collection
// backed by a gorm implementation. Controllers and services depend on the
// interfaces so the workflow logic can be exercised without a database.
package stores

import "errors"

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert hits a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
