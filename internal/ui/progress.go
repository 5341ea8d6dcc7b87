package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Markers prints one character per outcome: "." for success, "E" for error
type Markers struct {
	out io.Writer
}

// NewMarkers creates a new Markers writing to out
func NewMarkers(out io.Writer) *Markers {
	return &Markers{out: out}
}

// Success marks a passed test method
func (m *Markers) Success() { fmt.Fprint(m.out, ".") }

// Failure marks a failed hook or test method
func (m *Markers) Failure() { fmt.Fprint(m.out, "E") }

// ProgressBar shows a spinner with running success and failure counts.
// The number of tests is not known up front because discovery is lazy.
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	success int
	failed  int
}

// NewProgressBar creates a new progress bar writing to out
func NewProgressBar(out io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(successCount, failCount int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}

// Success counts a passed test method
func (p *ProgressBar) Success() {
	p.success++
	p.update()
}

// Failure counts a failed hook or test method
func (p *ProgressBar) Failure() {
	p.failed++
	p.update()
}

func (p *ProgressBar) update() {
	p.bar.Describe(describe(p.success, p.failed))
	p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
