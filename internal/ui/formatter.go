package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"fpt/internal/domain"
)

const rule = "├─────────────────────────────────┼─────────────────────────────┤"

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintRunSummary displays the meta statistics of a run
func (f *Formatter) PrintRunSummary(output domain.RunOutput) {
	meta := output.Meta
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(f.out)
	cyan.Fprintf(f.out, "╔═══════════════════════════════════════════════════════════════╗\n")
	cyan.Fprintf(f.out, "║                       Course Statistics                       ║\n")
	cyan.Fprintf(f.out, "╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Cases", fmt.Sprint(meta.TotalCases), color.FgWhite)
	fmt.Fprintln(f.out, rule)
	f.row("Passed Cases", fmt.Sprint(meta.PassedCases), color.FgGreen)
	fmt.Fprintln(f.out, rule)
	f.row("Failed Cases", fmt.Sprint(meta.FailedCases), color.FgRed)
	fmt.Fprintln(f.out, rule)
	f.row("Not Run", fmt.Sprint(meta.NotRunCases), color.FgYellow)
	fmt.Fprintln(f.out, rule)
	f.row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.FgWhite)
	fmt.Fprintln(f.out, rule)
	f.row("Timestamp", meta.Timestamp, color.FgWhite)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.Completed {
		color.New(color.FgGreen).Fprintf(f.out, "✓ All %d cases passed!\n", meta.TotalCases)
		return
	}
	color.New(color.FgRed).Fprintf(f.out, "✗ Stopped at %s :: %s\n", meta.FailedGroup, meta.FailedTest)
}

func (f *Formatter) row(label, value string, attr color.Attribute) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	color.New(attr).Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

// PrintCourse prints the sections, optionally with their test cases, as a
// tree. When last is set, the section and case that failed in that run are
// marked with [F].
func (f *Formatter) PrintCourse(groups []domain.Group, showTestCases bool, last *domain.RunOutput) {
	var failedGroup, failedTest string
	if last != nil && !last.Meta.Completed {
		failedGroup, failedTest = last.Meta.FailedGroup, last.Meta.FailedTest
	}
	marker := " " + color.RedString("[F]")

	cases := 0
	for _, g := range groups {
		cases += len(g.Cases)
	}
	green := color.New(color.FgGreen)
	if showTestCases {
		green.Fprintf(f.out, "Found %d section(s) with %d test case(s):\n\n", len(groups), cases)
	} else {
		green.Fprintf(f.out, "Found %d section(s):\n\n", len(groups))
	}

	cyan := color.New(color.FgCyan)
	for i, g := range groups {
		isLastGroup := i == len(groups)-1

		branch := "├── "
		if isLastGroup {
			branch = "└── "
		}
		mark := ""
		if g.Name == failedGroup {
			mark = marker
		}
		cyan.Fprintf(f.out, "%s%s", branch, g.Name)
		fmt.Fprintf(f.out, "%s\n", mark)

		if !showTestCases {
			continue
		}

		indent := "│   "
		if isLastGroup {
			indent = "    "
		}
		if len(g.Cases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test cases)"))
			continue
		}
		for j, tc := range g.Cases {
			leaf := "├── "
			if j == len(g.Cases)-1 {
				leaf = "└── "
			}
			mark := ""
			if g.Name == failedGroup && tc.Name == failedTest {
				mark = marker
			}
			fmt.Fprintf(f.out, "%s%s%s%s\n", indent, leaf, color.YellowString(tc.Name), mark)
		}
	}
}

// PrintHistory prints past runs, newest first
func (f *Formatter) PrintHistory(records []domain.RunRecord) {
	if len(records) == 0 {
		color.New(color.FgYellow).Fprintf(f.out, "No runs recorded yet.\n")
		return
	}

	color.New(color.FgCyan).Fprintf(f.out, "%-20s  %-9s  %-8s  %s\n", "STARTED", "PROGRESS", "DURATION", "RESULT")
	for _, r := range records {
		progress := fmt.Sprintf("%d/%d", r.Passed, r.Total)
		started := r.StartedAt.Local().Format("2006-01-02 15:04:05")
		duration := fmt.Sprintf("%.2fs", r.Duration.Seconds())

		fmt.Fprintf(f.out, "%-20s  %-9s  %-8s  ", started, progress, duration)
		if r.Completed {
			color.New(color.FgGreen).Fprintf(f.out, "completed\n")
			continue
		}
		color.New(color.FgRed).Fprintf(f.out, "failed at %s :: %s\n", r.FailedGroup, r.FailedTest)
		if r.Message != "" {
			first, _, _ := strings.Cut(r.Message, "\n")
			fmt.Fprintf(f.out, "%22s%s\n", "", first)
		}
	}
}
