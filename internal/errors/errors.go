package errors

import "errors"

// Sentinel errors shared by the service and API layers. Services wrap these
// with `%w` and the API layer maps them to HTTP status codes via `errors.Is()`.

var (
	// ErrNotFound signifies that a requested chat, entry, document or vector
	// could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state
	// of a resource.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrGeneration signifies that the language model failed to produce a
	// response. Blocking turns absorb it into a placeholder entry; streaming
	// turns surface it as a stream error event.
	ErrGeneration = errors.New("generation failed")

	// ErrInternal signifies an unexpected error on the server.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
