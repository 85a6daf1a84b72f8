package ui

import (
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"fpt/internal/domain"
)

// Reporter prints the progress of a run line by line: section banners and
// passed cases go to out, the failure block goes to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	root   string // frame files are shown relative to it

	banner  *color.Color
	pass    *color.Color
	fail    *color.Color
	message *color.Color
	frame   *color.Color
	next    *color.Color
	done    *color.Color
}

// NewReporter creates a new Reporter
func NewReporter(out, errOut io.Writer, root string) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		root:    root,
		banner:  color.New(color.FgCyan, color.Bold),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		message: color.New(color.FgRed),
		frame:   color.New(color.FgHiBlack),
		next:    color.New(color.FgYellow),
		done:    color.New(color.FgGreen, color.Bold),
	}
}

func (r *Reporter) GroupStarted(g domain.Group) {
	r.banner.Fprintf(r.out, "📚 Section: %s\n", g.Name)
}

func (r *Reporter) CasePassed(c domain.CaseResult) {
	r.pass.Fprintf(r.out, "  ✅ Test %q\n", c.Name)
}

// CaseFailed prints the failed case, its message and the frame excerpt.
func (r *Reporter) CaseFailed(c domain.CaseResult) {
	r.fail.Fprintf(r.errOut, "  ⛔️ Test %q was not passed\n", c.Name)
	if c.Failure == nil {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(c.Failure.Message, "\n"), "\n") {
		r.message.Fprintf(r.errOut, "     %s\n", line)
	}
	for _, f := range c.Failure.Excerpt {
		r.frame.Fprintf(r.errOut, "     at %s (%s:%d)\n", shortFunction(f.Function), relativeTo(r.root, f.File), f.Line)
	}
}

func (r *Reporter) GroupFinished(_ domain.Group, next *domain.Group) {
	if next != nil {
		r.next.Fprintf(r.out, "➡️  Next section: %s\n\n", next.Name)
		return
	}
	r.done.Fprintf(r.out, "🎉 Congratulations! All sections are completed.\n")
}

// relativeTo shows file relative to root when it lives below it
func relativeTo(root, file string) string {
	if root == "" || file == "" {
		return file
	}
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return filepath.ToSlash(rel)
}

// shortFunction drops the import path: "fpt/internal/lessons.init.func1"
// becomes "lessons.init.func1".
func shortFunction(name string) string {
	return path.Base(name)
}
