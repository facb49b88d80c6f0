package attendance

import "errors"

var (
	ErrDayRecordNotFound = errors.New("day attendance record not found")
)
