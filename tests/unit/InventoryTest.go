package unit

import (
	"strings"

	"xrun/tests/support"
	"xrun/xunit"
)

// InventoryTest relies on the setUp and tearDown of support.DatabaseCase.
type InventoryTest struct {
	support.DatabaseCase
}

func (i *InventoryTest) TestRestock() error {
	i.DB.Put("apples", 4)
	i.DB.Put("apples", 10)
	if n, _ := i.DB.Get("apples"); n != 10 {
		return xunit.Failf("expected 10 apples, got %d", n)
	}
	return nil
}

func (i *InventoryTest) TestListing() error {
	i.DB.Put("pears", 2)
	if got := strings.Join(i.DB.Keys(), ","); got != "apples,pears" {
		return xunit.Failf("unexpected listing %q", got)
	}
	return nil
}

var _ = xunit.Register(xunit.Case[InventoryTest]("tests.unit.InventoryTest",
	xunit.Bind("testRestock", (*InventoryTest).TestRestock),
	xunit.Bind("testListing", (*InventoryTest).TestListing),
).Extends(support.DatabaseCaseType))
