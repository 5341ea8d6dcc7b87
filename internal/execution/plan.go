package execution

import "xrun/xunit"

// Plan is the classified method set of one test-case type
type Plan struct {
	SetUp    []xunit.Method // Resolved setup hooks, own or inherited
	TearDown []xunit.Method // Resolved teardown hooks, own or inherited
	Tests    []xunit.Method // Test methods in declaration order

	SetUpInherited    bool
	TearDownInherited bool

	// setUpName is the method a setup failure is attributed to
	setUpName string
}

// Classify splits the methods declared by typ itself into hooks and tests
// and resolves hooks against the parent when typ declares none.
func Classify(typ *xunit.Type) Plan {
	var plan Plan
	var setUp, tearDown *xunit.Method

	for i := range typ.Methods {
		m := &typ.Methods[i]
		switch m.Name {
		case xunit.SetUpMethod:
			setUp = m
		case xunit.TearDownMethod:
			tearDown = m
		default:
			plan.Tests = append(plan.Tests, *m)
		}
	}

	plan.SetUp, plan.SetUpInherited = resolveHook(typ, setUp, xunit.SetUpMethod)
	plan.TearDown, plan.TearDownInherited = resolveHook(typ, tearDown, xunit.TearDownMethod)

	switch {
	case setUp != nil:
		plan.setUpName = setUp.Name
	case len(typ.Methods) > 0:
		plan.setUpName = typ.Methods[len(typ.Methods)-1].Name
	case typ.Parent != nil && len(typ.Parent.Methods) > 0:
		plan.setUpName = typ.Parent.Methods[len(typ.Parent.Methods)-1].Name
	default:
		plan.setUpName = xunit.SetUpMethod
	}

	return plan
}

// resolveHook returns own when declared, otherwise every parent method with
// the hook name.
func resolveHook(typ *xunit.Type, own *xunit.Method, name string) ([]xunit.Method, bool) {
	if own != nil {
		return []xunit.Method{*own}, false
	}
	if typ.Parent == nil {
		return nil, false
	}
	inherited := typ.Parent.Find(name)
	return inherited, len(inherited) > 0
}
