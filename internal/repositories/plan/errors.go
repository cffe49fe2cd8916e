package plan

import "errors"

var (
	// ErrNoActiveSession is returned when no plan has been generated yet
	ErrNoActiveSession = errors.New("no active session")

	// ErrPlanNotFound is returned when a plan ID is unknown or has expired
	ErrPlanNotFound = errors.New("plan not found")
)
