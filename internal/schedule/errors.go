package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrNoActiveSchedule = errors.New("no active schedule")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrTaskNotFound     = errors.New("task not found")
)
