package app

import "errors"

// Error kinds the handlers map to HTTP status codes. Validation failures
// carry the field name via models.MissingFieldError.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadySubscribed = errors.New("already subscribed")
)
