package schedule

import "errors"

var (
	ErrTimetableNotFound  = errors.New("timetable not found")
	ErrAssignmentNotFound = errors.New("timetable assignment not found")
)
