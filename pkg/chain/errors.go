package chain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrResolverMustBeSet      = errors.New("resolver must be set")
	ErrTransformationNotFound = errors.New("transformation not found")
	ErrTransformationFailed   = errors.New("transformation failed")
)

// StepError is returned when a step of a chain failed.
type StepError struct {
	Index int
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Step, e.Err)
}

// Unwrap returns the underlying error of the step.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error of the step so errors.Cause walks past it.
func (e *StepError) Cause() error {
	return e.Err
}

// transformationError links the error of a transformation to ErrTransformationFailed
// without losing the original error.
type transformationError struct {
	err error
}

func (e *transformationError) Error() string {
	return ErrTransformationFailed.Error() + ": " + e.err.Error()
}

func (e *transformationError) Is(target error) bool {
	return target == ErrTransformationFailed
}

func (e *transformationError) Unwrap() error {
	return e.err
}
