package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/services"
)

// Renderer writes styled task output. Styles degrade to plain text when out
// is not a terminal.
type Renderer struct {
	out  io.Writer
	time services.TimeService

	headerStyle    lipgloss.Style
	pendingStyle   lipgloss.Style
	completedStyle lipgloss.Style
	dimStyle       lipgloss.Style
	errorStyle     lipgloss.Style
}

// NewRenderer creates a renderer bound to out
func NewRenderer(out io.Writer, timeService services.TimeService) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:  out,
		time: timeService,

		headerStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		pendingStyle: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		completedStyle: r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		errorStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

// Header prints a section title.
func (r *Renderer) Header(title string) {
	fmt.Fprintln(r.out, r.headerStyle.Render(title))
}

// Tasks prints a numbered listing, or empty when there is nothing to show.
func (r *Renderer) Tasks(tasks []domain.Task, empty string) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, r.dimStyle.Render(empty))
		return
	}
	for i, task := range tasks {
		fmt.Fprintln(r.out, r.taskLine(i+1, task))
	}
}

func (r *Renderer) taskLine(n int, task domain.Task) string {
	box, style := "[ ]", r.pendingStyle
	if task.Completed {
		box, style = "[x]", r.completedStyle
	}

	meta := "created " + r.time.FormatDate(task.CreatedAt)
	if task.CompletedAt != nil {
		meta += ", completed " + r.time.FormatDate(*task.CompletedAt)
	}

	return fmt.Sprintf("%2d. %s %s  %s", n, box, style.Render(task.Text), r.dimStyle.Render("("+meta+")"))
}

// Line prints a plain message.
func (r *Renderer) Line(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Dim prints a secondary message.
func (r *Renderer) Dim(msg string) {
	fmt.Fprintln(r.out, r.dimStyle.Render(msg))
}

// Error prints a titled error message.
func (r *Renderer) Error(title, msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.errorStyle.Render(title+":"), msg)
}
