package xunit

import (
	"fmt"

	"github.com/pkg/errors"
)

// AssertionError is the failure raised by Fail and Failf.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string { return e.Message }

// Kind reports the failure category shown in run reports.
func (e *AssertionError) Kind() string { return "AssertionError" }

// FixtureError means a method was invoked on a fixture of the wrong type.
type FixtureError struct {
	Method string
	Got    string
	Want   string
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("method %s expects a %s fixture, got %s", e.Method, e.Want, e.Got)
}

// Kind reports the failure category shown in run reports.
func (e *FixtureError) Kind() string { return "FixtureError" }

// Fail returns an *AssertionError annotated with the caller's stack.
func Fail(message string) error {
	return errors.WithStack(&AssertionError{Message: message})
}

// Failf is Fail with formatting.
func Failf(format string, args ...any) error {
	return errors.WithStack(&AssertionError{Message: fmt.Sprintf(format, args...)})
}
