package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"xrun/internal/domain"
	"xrun/internal/execution"
	"xrun/xunit"
)

// Formatter formats and displays run output
type Formatter struct {
	out   io.Writer
	debug bool
}

// NewFormatter creates a new Formatter. In debug mode every error is
// followed by its trace.
func NewFormatter(out io.Writer, debug bool) *Formatter {
	return &Formatter{out: out, debug: debug}
}

// PrintHeader prints the banner shown before a run
func (f *Formatter) PrintHeader(version string) {
	fmt.Fprintf(f.out, "xrun %s\n\n", version)
}

// PrintNoTests reports that the test root was absent or empty
func (f *Formatter) PrintNoTests() {
	fmt.Fprintln(f.out, "No files found")
}

// PrintFatal reports a failure that aborted the run
func (f *Formatter) PrintFatal(err error) {
	fmt.Fprintln(f.out)
	color.New(color.BgRed, color.FgWhite).Fprintf(f.out, "FATAL: %v\n", err)
}

// PrintSummary prints elapsed time, counts, the numbered error list and the
// pass/fail banner
func (f *Formatter) PrintSummary(summary *domain.RunSummary) {
	fmt.Fprintf(f.out, "\n\nTime: %s ms\n", millis(summary.Elapsed))

	total := summary.Total()
	if summary.Errors == 0 {
		fmt.Fprintln(f.out)
		color.New(color.BgGreen, color.FgBlack).Fprintf(f.out, "OK (%d %s)\n", total, plural(total, "test", "tests"))
		fmt.Fprintln(f.out)
		return
	}

	fmt.Fprintf(f.out, "Errors: %d\n", summary.Errors)
	if summary.Errors == 1 {
		fmt.Fprintln(f.out, "There was 1 error")
	} else {
		fmt.Fprintf(f.out, "There were %d errors:\n", summary.Errors)
	}

	for i, record := range summary.Records {
		fmt.Fprintf(f.out, "%d) %s: %s: %s\n", i+1, record.Name(), record.Kind, record.Message)
		if f.debug {
			fmt.Fprintln(f.out, record.Trace)
		}
	}

	banner := color.New(color.BgRed, color.FgWhite)
	tests := plural(total, "Test", "Tests")
	fmt.Fprintln(f.out)
	if summary.Errors == 1 {
		banner.Fprintln(f.out, "ERROR!")
		banner.Fprintf(f.out, "%s %d, Error: %d\n", tests, total, summary.Errors)
	} else {
		banner.Fprintln(f.out, "ERRORS!")
		banner.Fprintf(f.out, "%s %d, Errors: %d\n", tests, total, summary.Errors)
	}
	fmt.Fprintln(f.out)
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// PrintTypeList prints discovered types with their classified methods
func (f *Formatter) PrintTypeList(types []*xunit.Type, showMethods bool) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test case type(s):\n\n", len(types))

	for i, typ := range types {
		isLastType := i == len(types)-1

		branch, indent := "├── ", "│   "
		if isLastType {
			branch, indent = "└── ", "    "
		}

		marker := ""
		if typ.Abstract {
			marker = " " + color.YellowString("[abstract]")
		}
		fmt.Fprintf(f.out, "%s%s%s\n", branch, color.CyanString(typ.ID), marker)

		if !showMethods || typ.Abstract {
			continue
		}

		lines := methodLines(execution.Classify(typ))
		if len(lines) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test methods found)"))
			continue
		}
		for j, line := range lines {
			if j == len(lines)-1 {
				fmt.Fprintf(f.out, "%s└── %s\n", indent, line)
			} else {
				fmt.Fprintf(f.out, "%s├── %s\n", indent, line)
			}
		}
	}
}

func methodLines(plan execution.Plan) []string {
	var lines []string
	hook := func(methods []xunit.Method, inherited bool) {
		for _, m := range methods {
			line := color.MagentaString(m.Name)
			if inherited {
				line += " (inherited)"
			}
			lines = append(lines, line)
		}
	}

	hook(plan.SetUp, plan.SetUpInherited)
	for _, m := range plan.Tests {
		lines = append(lines, color.YellowString(m.Name))
	}
	hook(plan.TearDown, plan.TearDownInherited)
	return lines
}
