package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch not found")

	// ErrDeleteNotPermitted guards correction-sourced synthetic punches;
	// they are removed by deleting the exception that produced them.
	ErrDeleteNotPermitted = errors.New("synthetic punch cannot be deleted directly")
)
