package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"xrun/internal/domain"
	"xrun/xunit"
)

func init() {
	color.NoColor = true
}

func TestFormatter_PrintSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.RunSummary
		debug    bool
		contains []string
		absent   []string
	}{
		{
			name:     "single passing test",
			summary:  domain.RunSummary{Executed: 1, Elapsed: 2 * time.Millisecond},
			contains: []string{"Time: 2.000 ms", "OK (1 test)"},
			absent:   []string{"Errors:"},
		},
		{
			name:     "zero outcome run",
			summary:  domain.RunSummary{},
			contains: []string{"OK (0 tests)"},
		},
		{
			name: "one error",
			summary: domain.RunSummary{
				Executed: 1,
				Errors:   1,
				Records: []domain.ErrorRecord{
					{Type: "tests.unit.Foo", Method: "testB", Kind: "AssertionError", Message: "boom", Trace: "frame-one"},
				},
			},
			contains: []string{
				"Errors: 1\n",
				"There was 1 error\n",
				"1) tests.unit.Foo::testB: AssertionError: boom\n",
				"ERROR!\n",
				"Tests 2, Error: 1\n",
			},
			absent: []string{"frame-one", "There were"},
		},
		{
			name: "several errors with traces",
			summary: domain.RunSummary{
				Errors: 2,
				Records: []domain.ErrorRecord{
					{Type: "tests.unit.Foo", Method: "setUp", Kind: "errors.errorString", Message: "db down", Trace: "frame-one"},
					{Type: "tests.unit.Bar", Method: "testC", Kind: "AssertionError", Message: "nope", Trace: "frame-two"},
				},
			},
			debug: true,
			contains: []string{
				"There were 2 errors:\n",
				"1) tests.unit.Foo::setUp: errors.errorString: db down\nframe-one\n",
				"2) tests.unit.Bar::testC: AssertionError: nope\nframe-two\n",
				"ERRORS!\n",
				"Tests 2, Errors: 2\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewFormatter(&out, tt.debug).PrintSummary(&tt.summary)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestFormatter_SingleErrorOnlyTotal(t *testing.T) {
	var out bytes.Buffer
	NewFormatter(&out, false).PrintSummary(&domain.RunSummary{
		Errors:  1,
		Records: []domain.ErrorRecord{{Type: "tests.unit.Foo", Method: "setUp", Kind: "AssertionError", Message: "x"}},
	})
	assert.Contains(t, out.String(), "Test 1, Error: 1")
}

func TestMarkers(t *testing.T) {
	var out bytes.Buffer
	m := NewMarkers(&out)
	m.Success()
	m.Failure()
	m.Success()
	assert.Equal(t, ".E.", out.String())
}

func TestFormatter_PrintTypeList(t *testing.T) {
	type fixture struct{}
	noop := func(*fixture) error { return nil }

	base := xunit.AbstractCase("tests.support.Base", xunit.Bind("setUp", noop))
	child := xunit.Case[fixture]("tests.unit.Child",
		xunit.Bind("testA", noop),
		xunit.Bind("tearDown", noop),
	).Extends(base)
	empty := xunit.Case[fixture]("tests.unit.Empty")

	var out bytes.Buffer
	NewFormatter(&out, false).PrintTypeList([]*xunit.Type{base, child, empty}, true)

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "Found 3 test case type(s)")
	assert.Contains(t, out.String(), "├── tests.support.Base [abstract]")
	assert.Contains(t, out.String(), "│   ├── setUp (inherited)")
	assert.Contains(t, out.String(), "│   ├── testA")
	assert.Contains(t, out.String(), "│   └── tearDown\n")
	assert.Contains(t, out.String(), "└── tests.unit.Empty")
	assert.Contains(t, out.String(), "    └── (no test methods found)")
}

func TestFormatErrorDetails(t *testing.T) {
	lines := make([]string, maxTraceLines+5)
	for i := range lines {
		lines[i] = "frame"
	}
	details := formatErrorDetails(domain.StoredError{ErrorRecord: domain.ErrorRecord{
		Type: "tests.unit.Foo", Method: "testB", Kind: "AssertionError", Message: "boom",
		Trace: strings.Join(lines, "\n"),
	}})

	assert.Contains(t, details, "tests.unit.Foo::testB")
	assert.Contains(t, details, "... and 5 more lines")
	assert.Equal(t, maxTraceLines, strings.Count(details, "  frame\n"))
}

func TestCountUnresolved(t *testing.T) {
	details := []domain.StoredError{{Resolved: true}, {}, {}}
	assert.Equal(t, 2, countUnresolved(details))
}

func TestHeaderText(t *testing.T) {
	details := []domain.StoredError{{Resolved: true}, {}}

	text := headerText(details, nil)
	assert.Contains(t, text, "(2 total, 1 unresolved)")
	assert.NotContains(t, text, "save failed")

	text = headerText(details, errors.New("disk full"))
	assert.Contains(t, text, "[red]save failed: disk full[white]")
}
