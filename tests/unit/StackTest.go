// Package unit holds the sample unit suites run by xrun against itself.
package unit

import "xrun/xunit"

type StackTest struct {
	items []int
}

func (s *StackTest) SetUp() error {
	s.items = []int{1, 2}
	return nil
}

func (s *StackTest) TestPush() error {
	s.items = append(s.items, 3)
	if len(s.items) != 3 {
		return xunit.Failf("expected 3 items, got %d", len(s.items))
	}
	return nil
}

// Runs after TestPush on the same fixture.
func (s *StackTest) TestPop() error {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	if top != 3 {
		return xunit.Failf("expected 3 on top, got %d", top)
	}
	return nil
}

var _ = xunit.Register(xunit.Case[StackTest]("tests.unit.StackTest",
	xunit.Bind(xunit.SetUpMethod, (*StackTest).SetUp),
	xunit.Bind("testPush", (*StackTest).TestPush),
	xunit.Bind("testPop", (*StackTest).TestPop),
))
