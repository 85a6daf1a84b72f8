package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fpt/internal/domain"
)

func courseFixture() []domain.Group {
	noop := func() {}
	return []domain.Group{
		{Name: "Getting started", Cases: []domain.TestCase{
			{Name: "Double array", Body: noop},
			{Name: "Filter odd", Body: noop},
		}},
		{Name: "Empty", Cases: nil},
		{Name: "Partial application", Cases: []domain.TestCase{
			{Name: "Add hundred", Body: noop},
		}},
	}
}

func TestFormatter_PrintCourse(t *testing.T) {
	disableColor(t)

	last := &domain.RunOutput{Meta: domain.RunMeta{
		FailedGroup: "Getting started",
		FailedTest:  "Filter odd",
	}}

	tests := []struct {
		name      string
		showCases bool
		last      *domain.RunOutput
		expected  string
	}{
		{
			name: "sections only",
			expected: "Found 3 section(s):\n\n" +
				"├── Getting started\n" +
				"├── Empty\n" +
				"└── Partial application\n",
		},
		{
			name:      "with cases and failure marker",
			showCases: true,
			last:      last,
			expected: "Found 3 section(s) with 3 test case(s):\n\n" +
				"├── Getting started [F]\n" +
				"│   ├── Double array\n" +
				"│   └── Filter odd [F]\n" +
				"├── Empty\n" +
				"│   └── (no test cases)\n" +
				"└── Partial application\n" +
				"    └── Add hundred\n",
		},
		{
			name: "completed run has no marker",
			last: &domain.RunOutput{Meta: domain.RunMeta{Completed: true}},
			expected: "Found 3 section(s):\n\n" +
				"├── Getting started\n" +
				"├── Empty\n" +
				"└── Partial application\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewFormatter(&buf).PrintCourse(courseFixture(), tt.showCases, tt.last)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func summaryRow(label, value string) string {
	return fmt.Sprintf("│ %-31s │ %-27s │\n", label, value)
}

func TestFormatter_PrintRunSummary(t *testing.T) {
	disableColor(t)

	t.Run("completed", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintRunSummary(domain.RunOutput{Meta: domain.RunMeta{
			TotalCases:      4,
			PassedCases:     4,
			Completed:       true,
			DurationSeconds: 0.25,
			Timestamp:       "2026-01-02T03:04:05Z",
		}})

		out := buf.String()
		assert.Contains(t, out, summaryRow("Total Cases", "4"))
		assert.Contains(t, out, summaryRow("Duration", "0.25s"))
		assert.Contains(t, out, "2026-01-02T03:04:05Z")
		assert.True(t, strings.HasSuffix(out, "✓ All 4 cases passed!\n"))
	})

	t.Run("stopped", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintRunSummary(domain.RunOutput{Meta: domain.RunMeta{
			TotalCases:  4,
			PassedCases: 1,
			FailedCases: 1,
			NotRunCases: 2,
			FailedGroup: "G1",
			FailedTest:  "T2",
		}})

		out := buf.String()
		assert.Contains(t, out, summaryRow("Not Run", "2"))
		assert.True(t, strings.HasSuffix(out, "✗ Stopped at G1 :: T2\n"))
	})
}

func TestFormatter_PrintHistory(t *testing.T) {
	disableColor(t)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintHistory(nil)
		assert.Equal(t, "No runs recorded yet.\n", buf.String())
	})

	t.Run("records", func(t *testing.T) {
		started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		records := []domain.RunRecord{
			{StartedAt: started, Duration: 1500 * time.Millisecond, Total: 4, Passed: 4, Completed: true},
			{
				StartedAt:   started.Add(-time.Hour),
				Total:       4,
				Passed:      1,
				FailedGroup: "G1",
				FailedTest:  "T2",
				Message:     "boom\nsecond line",
			},
		}

		var buf bytes.Buffer
		NewFormatter(&buf).PrintHistory(records)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if assert.Len(t, lines, 4) {
			assert.Contains(t, lines[0], "STARTED")
			assert.Contains(t, lines[1], started.Local().Format("2006-01-02 15:04:05"))
			assert.Contains(t, lines[1], "4/4")
			assert.Contains(t, lines[1], "1.50s")
			assert.True(t, strings.HasSuffix(lines[1], "completed"))
			assert.True(t, strings.HasSuffix(lines[2], "failed at G1 :: T2"))
			assert.Equal(t, strings.Repeat(" ", 22)+"boom", lines[3])
		}
	})
}
