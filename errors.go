package planner

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel wrapped by every error that
// GeneratePlanByMode and GenerateStandaloneGrid return. It signals a request the planner cannot answer at
// all: mutually exclusive parameters, a missing required parameter, or an
// unknown mode/aperture name.
var ErrInvalidArgument = errors.New("invalid argument")

// errDegenerateInput marks an internal branch where the input is
// well-formed but yields nothing to plan (empty mask list, every mask
// below the area floor, a centroid that needs clamping). It is never
// returned to a caller: the dispatcher handles those inputs by producing a
// well-formed, empty PlanResult directly. No code or test in this module
// currently produces or checks this value.
var errDegenerateInput = errors.New("degenerate input")

// PlanError reports an invalid request together with the offending
// parameter name.
type PlanError struct {
	Param  string
	Reason string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Reason)
}

func (e *PlanError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(param, reason string) error {
	return &PlanError{Param: param, Reason: reason}
}
