package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// room or stay does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation before reaching the
// data source or the template engine (e.g. a placeholder with an empty key).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrLoadFailure is returned when the room board could not be loaded.
// The whole load is aborted; callers never receive a partially built board.
var ErrLoadFailure = errors.New("failed to load rooms")

// ErrGenerationFailure is returned when a contract could not be produced:
// unreadable template, malformed document, or an unwritable destination.
var ErrGenerationFailure = errors.New("contract generation failed")
