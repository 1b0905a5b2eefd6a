package planner

import (
	"errors"
	"fmt"
)

// NoSuitableInstanceError signals that no cataloged instance for Accelerator
// has more memory than the model requires.
type NoSuitableInstanceError struct {
	SizeGB      float64
	Accelerator string
}

func (e *NoSuitableInstanceError) Error() string {
	return fmt.Sprintf("could not find instance type for model size %v GB and accelerator %s", e.SizeGB, e.Accelerator)
}

// IsNoSuitableInstance reports whether err is (or wraps) a NoSuitableInstanceError.
func IsNoSuitableInstance(err error) bool {
	var e *NoSuitableInstanceError
	return errors.As(err, &e)
}

// UnknownTaskError signals that no snippet template exists for Task.
type UnknownTaskError struct{ Task string }

func (e *UnknownTaskError) Error() string { return "no snippet template for task: " + e.Task }

// IsUnknownTask reports whether err is (or wraps) an UnknownTaskError.
func IsUnknownTask(err error) bool {
	var e *UnknownTaskError
	return errors.As(err, &e)
}
