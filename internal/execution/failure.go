package execution

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"xrun/internal/domain"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type kinder interface {
	Kind() string
}

// FatalError aborts a run. It is returned for constructor and teardown
// failures, which are never recorded as ErrorRecords.
type FatalError struct {
	Type   string
	Method string
	Stage  string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("%s of %s failed: %v", e.Stage, e.Type, e.Err)
	}
	return fmt.Sprintf("%s of %s::%s failed: %v", e.Stage, e.Type, e.Method, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// newErrorRecord captures a caught failure
func newErrorRecord(typeID, method string, err error) domain.ErrorRecord {
	return domain.ErrorRecord{
		Type:    typeID,
		Method:  method,
		Kind:    failureKind(err),
		Message: err.Error(),
		Trace:   failureTrace(err),
	}
}

// failureKind prefers an explicit Kind and falls back to the Go type name of
// the innermost error.
func failureKind(err error) string {
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", rootCause(err)), "*")
}

// failureTrace returns the innermost stack carried by err, or the stack of
// the caller when err carries none.
func failureTrace(err error) string {
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
	}
	if st == nil {
		st = errors.WithStack(err).(stackTracer)
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
