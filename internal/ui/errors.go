package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fpt/internal/domain"
)

// maxViewerFrames bounds the full stack shown in the details pane
const maxViewerFrames = 15

// ErrorViewer browses the cases of the last run in an interactive TUI, with
// the failed case selected.
type ErrorViewer struct {
	out  io.Writer
	root string
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(out io.Writer, root string) *ErrorViewer {
	return &ErrorViewer{out: out, root: root}
}

// View displays the executed cases of results
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if results.Meta.Completed || failedIndex(results.Details) < 0 {
		color.New(color.FgGreen).Fprintf(ev.out, "✓ No failures in the last run!\n")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, cr := range results.Details {
		list.AddItem(listItemText(cr, i), "", 0, nil)
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

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Last run: %d/%d passed | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
			results.Meta.PassedCases, results.Meta.TotalCases))

	updateDetails := func(index int) {
		if index < 0 || index >= len(results.Details) {
			return
		}
		cr := results.Details[index]
		statsView.SetText(formatCaseStats(cr, results.Meta.TotalCases))
		detailsView.SetText(ev.formatFailureDetails(cr)).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
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

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})

	selected := failedIndex(results.Details)
	list.SetCurrentItem(selected)
	updateDetails(selected)

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

func failedIndex(details []domain.CaseResult) int {
	for i, cr := range details {
		if cr.Status == domain.StatusFailed {
			return i
		}
	}
	return -1
}

// listItemText formats a case for the list using tview color tags
func listItemText(cr domain.CaseResult, index int) string {
	if cr.Status == domain.StatusFailed {
		return fmt.Sprintf("[red]✗ %d.[white] %s", index+1, cr.Name)
	}
	return fmt.Sprintf("[green]✓ %d.[white] %s", index+1, cr.Name)
}

// formatFailureDetails formats a case for display using tview color tags ([red], [cyan], etc.)
func (ev *ErrorViewer) formatFailureDetails(cr domain.CaseResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	if cr.Status != domain.StatusFailed || cr.Failure == nil {
		fmt.Fprintf(w, "[green]✓ Test: %s[white]\n\n", cr.Name)
		fmt.Fprintf(w, "[cyan]Section: %s[white]\n", cr.Group)
		fmt.Fprintf(w, "Passed in %s\n", cr.Duration)
		w.Flush()
		return builder.String()
	}

	failure := cr.Failure
	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", cr.Name)
	fmt.Fprintf(w, "[cyan]Section: %s[white]\n", cr.Group)
	fmt.Fprintf(w, "[cyan]Kind: %s[white]\n", failure.Kind)
	if len(failure.Excerpt) > 0 {
		f := failure.Excerpt[0]
		fmt.Fprintf(w, "[yellow]Location: %s:%d[white]\n", relativeTo(ev.root, f.File), f.Line)
	}
	fmt.Fprintf(w, "\n")

	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n\n", tview.Escape(failure.Message))
	}

	if len(failure.Frames) > 0 {
		fmt.Fprintf(w, "[yellow]Stack Trace:[white]\n")
		for i, f := range failure.Frames {
			if i == maxViewerFrames {
				break
			}
			fmt.Fprintf(w, "  %s\t%s:%d\n", shortFunction(f.Function), relativeTo(ev.root, f.File), f.Line)
		}
		if len(failure.Frames) > maxViewerFrames {
			fmt.Fprintf(w, "  [gray]... and %d more frames[white]\n", len(failure.Frames)-maxViewerFrames)
		}
	}

	w.Flush()
	return builder.String()
}

// formatCaseStats formats the stats header for a case
func formatCaseStats(cr domain.CaseResult, total int) string {
	group := cr.Group
	if group == "" {
		group = "Unknown section"
	}
	return fmt.Sprintf("[cyan]case %d/%d:[white] [yellow]%s[white]::[yellow]%s[white]\n",
		cr.Position, total, group, cr.Name)
}
