package schedule

import (
	"errors"
	"fmt"
)

// ErrLoad matches every LoadError via errors.Is.
var ErrLoad = errors.New("loading schedule")

// ErrDayNotFound is returned by sources that have no document for a day.
var ErrDayNotFound = errors.New("no schedule for day")

// LoadError reports a failure to read or parse one day of the schedule.
// The loader never returns a partial day: any LoadError means no talks.
type LoadError struct {
	Day string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s schedule: %v", e.Day, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets callers test for ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
