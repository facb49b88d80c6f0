package summary

import "errors"

var (
	// ErrValidationBlocked means unresolved pending days remain; the exact
	// count travels in the result DTO.
	ErrValidationBlocked = errors.New("month has unresolved pending days")

	ErrSummaryNotFound   = errors.New("monthly summary not found")
	ErrMonthNotValidated = errors.New("month is not validated")
)
