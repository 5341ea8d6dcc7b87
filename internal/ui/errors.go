package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xrun/internal/domain"
	"xrun/internal/storage"
)

// maxTraceLines limits the trace shown in the details pane
const maxTraceLines = 20

// ErrorViewer displays the errors of the last run in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View displays run errors in an interactive TUI. R toggles the resolved
// mark of the selected error and persists it.
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No errors in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	// list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		headerView.SetText(headerText(results.Details, saveErr))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			statsView.SetText(formatErrorStats(results.Meta, index+1))
			detailsView.SetText(formatErrorDetails(results.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					results.Details[index].Resolved = !results.Details[index].Resolved
					list.SetItemText(index, listItemText(results.Details[index], index), "")
					// a failed write keeps the in-memory mark; the next toggle retries
					saveErr = ev.storage.SaveOutput(results)
					updateHeader()
					updateDetails()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func countUnresolved(details []domain.StoredError) int {
	count := 0
	for _, d := range details {
		if !d.Resolved {
			count++
		}
	}
	return count
}

// listItemText formats one list entry using tview color tags
func listItemText(e domain.StoredError, index int) string {
	if e.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, e.Name())
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, e.Name())
}

// formatErrorDetails formats an error record for display using tview color tags ([red], [cyan], etc.)
func formatErrorDetails(e domain.StoredError) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ %s[white]\n\n", tview.Escape(e.Name()))
	fmt.Fprintf(&builder, "[cyan]Kind:[white] %s\n\n", tview.Escape(e.Kind))
	if e.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n\n", tview.Escape(e.Message))
	}

	if e.Trace != "" {
		lines := strings.Split(e.Trace, "\n")
		builder.WriteString("[yellow]Trace:[white]\n")
		for i, line := range lines {
			if i == maxTraceLines {
				fmt.Fprintf(&builder, "  [gray]... and %d more lines[white]\n", len(lines)-maxTraceLines)
				break
			}
			fmt.Fprintf(&builder, "  %s\n", tview.Escape(line))
		}
	}

	return builder.String()
}

// headerText formats the viewer header. A failed save of the resolved marks
// is shown until the next successful one.
func headerText(details []domain.StoredError, saveErr error) string {
	text := fmt.Sprintf(
		" Run errors (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
		len(details), countUnresolved(details),
	)
	if saveErr != nil {
		text += fmt.Sprintf("| [red]save failed: %s[white] ", tview.Escape(saveErr.Error()))
	}
	return text
}

// formatErrorStats formats the stats header for an error record
func formatErrorStats(meta domain.RunMeta, number int) string {
	return fmt.Sprintf(
		"[cyan]error:[white] [yellow]%d[white] | [cyan]run:[white] %d tests, %d errors, %.3fs | [cyan]at:[white] %s\n",
		number, meta.Total, meta.Errors, meta.DurationSeconds, meta.Timestamp,
	)
}
