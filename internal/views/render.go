// Package views renders tasks and reminders as line-oriented text. Layout is
// computed on plain strings; terminal styling is a final decoration pass that
// can be switched off entirely, so tests and piped output see bare text.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/rem/internal/model"
)

type Options struct {
	// All includes completed tasks and inactive reminders, which are
	// otherwise suppressed entirely.
	All bool
	// Verbose emits the timestamp/description/work-bit detail lines.
	Verbose bool
	// Now is the single time snapshot for the invocation; overdue and
	// active checks all compare against it.
	Now time.Time
}

type styles struct {
	heading        lipgloss.Style
	doneHeading    lipgloss.Style
	overdueHeading lipgloss.Style
	startedHeading lipgloss.Style
	doneLine       lipgloss.Style
	overdueLine    lipgloss.Style
}

type Renderer struct {
	st styles
}

// NewRenderer returns a renderer. With color false every style is the zero
// style and output is plain text.
func NewRenderer(color bool) *Renderer {
	if !color {
		return &Renderer{}
	}
	return &Renderer{st: styles{
		heading:        lipgloss.NewStyle().Bold(true),
		doneHeading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		overdueHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		startedHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		doneLine:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		overdueLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}}
}

// Task renders one task, or returns "" when the task is filtered out.
func (r *Renderer) Task(t model.Task, opts Options) string {
	if !opts.All && t.Completed != nil {
		return ""
	}

	var b strings.Builder

	marker := " "
	if t.Completed != nil {
		marker = "x"
	}
	heading := r.st.heading
	if !opts.Verbose {
		switch {
		case t.Completed != nil:
			heading = r.st.doneHeading
		case t.Overdue(opts.Now):
			heading = r.st.overdueHeading
		case t.Started(opts.Now):
			heading = r.st.startedHeading
		}
	}
	fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("- [%s] (%d) %s", marker, t.ID, t.Title)))

	if !opts.Verbose {
		return b.String()
	}

	if t.Completed != nil {
		fmt.Fprintf(&b, "  %s\n", r.st.doneLine.Render("completed: "+model.FormatDateTime(*t.Completed)))
	}
	fmt.Fprintf(&b, "  created:   %s\n", model.FormatDateTime(t.Created))
	if t.Start != nil {
		fmt.Fprintf(&b, "  start:     %s\n", model.FormatDateTime(*t.Start))
	}
	if t.Due != nil {
		line := "due:       " + model.FormatDateTime(*t.Due)
		if t.Overdue(opts.Now) {
			line = r.st.overdueLine.Render(line)
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "  %s\n", t.Description)
	}
	for _, bit := range t.WorkBits {
		if bit.Description != "" {
			fmt.Fprintf(&b, "  %s: %s\n", model.FormatDateTime(bit.At), bit.Description)
		} else {
			fmt.Fprintf(&b, "  %s\n", model.FormatDateTime(bit.At))
		}
	}
	return b.String()
}

// Reminder renders one reminder, or returns "" when it is filtered out.
func (r *Renderer) Reminder(rem model.Reminder, opts Options) string {
	active := rem.IsActive(opts.Now)
	if !opts.All && !active {
		return ""
	}

	var b strings.Builder

	marker := " "
	if !active {
		marker = "x"
	}
	heading := r.st.heading
	if !opts.Verbose && !active {
		heading = r.st.doneHeading
	}
	fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("- [%s] (%d) %s", marker, rem.ID, rem.Title)))

	if !opts.Verbose {
		return b.String()
	}

	fmt.Fprintf(&b, "  created:   %s\n", model.FormatDateTime(rem.Created))
	fmt.Fprintf(&b, "  first due: %s\n", model.FormatDateTime(rem.FirstDue))
	if rem.Until != nil {
		fmt.Fprintf(&b, "  until:     %s\n", model.FormatDateTime(*rem.Until))
	}
	fmt.Fprintf(&b, "  next due:  %s\n", model.FormatDateTime(rem.NextDue(opts.Now)))
	if rem.Description != "" {
		fmt.Fprintf(&b, "  %s\n", rem.Description)
	}
	return b.String()
}
