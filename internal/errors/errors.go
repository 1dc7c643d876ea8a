package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these recognizable errors without knowing anything about HTTP;
// the API layer maps them to status codes with errors.Is().

var (
	// ErrNotFound signifies that a requested resource could not be located,
	// e.g. asking for the messages of a conversation that does not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrBusy signifies that a question is already in flight. The processing
	// flag is the advisory lock the UI honors by disabling submission; this
	// error is the hard guard behind it for re-entrant submissions.
	// Mapped to 409 Conflict.
	ErrBusy = errors.New("a question is already being processed")

	// ErrConfig signifies missing or invalid startup configuration (API key,
	// agent name, dataset name). Configuration errors are fatal: the process
	// refuses to start rather than run degraded.
	ErrConfig = errors.New("invalid configuration")

	// ErrInternal signifies an unexpected error on the server, kept generic
	// to avoid leaking implementation details to the client.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
