// Package xunit is the registration surface for xrun test cases.
//
// A test-case type is registered once, usually from an init function in the
// file whose path xrun maps to the type's identifier:
//
//	// tests/unit/StackTest.go
//	type StackTest struct{ items []int }
//
//	func (s *StackTest) SetUp() error     { s.items = nil; return nil }
//	func (s *StackTest) TestPush() error  { ... }
//
//	var _ = xunit.Register(xunit.Case[StackTest]("tests.unit.StackTest",
//		xunit.Bind("setUp", (*StackTest).SetUp),
//		xunit.Bind("testPush", (*StackTest).TestPush),
//	))
//
// Methods are listed in declaration order and classified by name when a run
// executes them: "setUp" and "tearDown" are hooks, everything else is a test.
// One fixture instance is created per type and shared by its hooks and all of
// its test methods; tests of the same type are not isolated from each other.
//
// A type without its own setUp or tearDown falls back to the hooks of its
// Parent. Only one level of inheritance is consulted.
package xunit
