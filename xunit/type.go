package xunit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Hook method names.
const (
	SetUpMethod    = "setUp"
	TearDownMethod = "tearDown"
)

// Method is a public, zero-argument member of a test-case type.
type Method struct {
	Name   string
	Invoke func(fixture any) error
}

// Type describes a test-case type: how to build its fixture and which
// methods it declares itself.
type Type struct {
	ID       string
	Abstract bool
	Parent   *Type
	New      func() (any, error)
	Methods  []Method
}

// Case returns a concrete Type whose fixture is a freshly allocated *T.
func Case[T any](id string, methods ...Method) *Type {
	return &Type{
		ID:      id,
		New:     func() (any, error) { return new(T), nil },
		Methods: methods,
	}
}

// AbstractCase returns a Type that is never instantiated. Its methods serve as
// hook fallbacks for types that extend it.
func AbstractCase(id string, methods ...Method) *Type {
	return &Type{ID: id, Abstract: true, Methods: methods}
}

// Extends sets the parent type and returns t.
func (t *Type) Extends(parent *Type) *Type {
	t.Parent = parent
	return t
}

// Find returns every declared method with the given name, in declaration order.
func (t *Type) Find(name string) []Method {
	var found []Method
	for _, m := range t.Methods {
		if m.Name == name {
			found = append(found, m)
		}
	}
	return found
}

// Bind adapts a typed method to a Method. The fixture handed to Invoke must
// satisfy F, otherwise a *FixtureError is returned. F may be an interface,
// which is how parent hooks reach the embedded part of a child fixture.
func Bind[F any](name string, fn func(F) error) Method {
	return Method{
		Name: name,
		Invoke: func(fixture any) error {
			f, ok := fixture.(F)
			if !ok {
				return errors.WithStack(&FixtureError{
					Method: name,
					Got:    fmt.Sprintf("%T", fixture),
					Want:   fmt.Sprintf("%T", (*F)(nil))[1:],
				})
			}
			return fn(f)
		},
	}
}
