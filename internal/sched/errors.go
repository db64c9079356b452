package sched

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every configuration error returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError describes a rejected input value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func invalid(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// requireSingleProcessor rejects pools that are not exactly one processor.
func requireSingleProcessor(policy string, processors []*Processor) error {
	if len(processors) != 1 {
		return invalid("processor count", len(processors), policy+" requires exactly one processor")
	}
	return nil
}
