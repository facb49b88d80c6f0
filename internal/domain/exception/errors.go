package exception

import "errors"

var (
	ErrExceptionNotFound         = errors.New("exception not found")
	ErrExceptionAlreadyProcessed = errors.New("exception has already been approved or rejected")
	ErrInvalidPayload            = errors.New("exception payload is incomplete for its type")
)
