package grouping

import "errors"

// Precondition failures of Allocate. Both are returned before any work is
// done, so a failed call draws no random numbers and builds no group.
var (
	ErrGroupCount = errors.New("number of groups cannot exceed number of people")
	ErrNameCount  = errors.New("number of group names must match number of groups")
)
