package payment

import "errors"

// Service errors
var (
	ErrMissingApplicationID = errors.New("no application_id in session metadata")
)
