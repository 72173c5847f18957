// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios. For example,
// ErrNotFound indicates that a content record does not exist, while
// ErrConflict signals that an operation cannot proceed due to conflicting
// state (e.g. a duplicate unique field).
package repository

import "errors"

// ErrNotFound is returned when a content record cannot be found. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrForbidden is returned when the caller attempts an operation they are
// not authorized to perform. Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a write cannot be performed because of
// conflicting state, such as inserting a duplicate unique value. Handlers
// should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
