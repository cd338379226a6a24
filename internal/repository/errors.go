package repository

import "errors"

// ErrNotFound is returned when a query for a single entity finds no rows, or
// when a write references a parent that does not exist.
//
// The service layer translates it into the domain-level `app_errors.ErrNotFound`
// so that business logic never sees driver errors such as `sql.ErrNoRows` or
// `redis.Nil`.
var ErrNotFound = errors.New("repository: not found")

// ErrDimensionMismatch is returned when a query vector and a stored vector
// have different lengths.
var ErrDimensionMismatch = errors.New("repository: vector dimension mismatch")
