package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup.
var (
	// ErrInvalidParameter indicates a physical parameter or time grid value
	// outside its valid range.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrEmptyTrajectory indicates an operation that needs at least one sample.
	ErrEmptyTrajectory = errors.New("dynamo: empty trajectory")
)

// ParamError wraps ErrInvalidParameter with the offending field.
type ParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// InvalidParameter returns a *ParamError for name.
func InvalidParameter(name string, value float64, reason string) error {
	return &ParamError{Name: name, Value: value, Reason: reason}
}
