package override

import "errors"

var (
	ErrOverrideNotFound    = errors.New("override not found")
	ErrConflictingOverride = errors.New("existing override kind conflicts with the requested change")
)
