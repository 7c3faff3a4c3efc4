// Package output provides terminal formatters for the task view.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

const (
	// Title is the heading printed above the task rows.
	Title = "Task Manager"

	// Separator frames the title.
	Separator = "------------"

	strikeOn  = "\x1b[9m"
	strikeOff = "\x1b[0m"
)

// Options controls view rendering.
type Options struct {
	// Color enables ANSI strikethrough for completed tasks.
	Color bool

	// Quiet suppresses the empty-list notice.
	Quiet bool
}

// UseColor resolves a display.color mode for the given writer.
// In auto mode, color is used only when w is a terminal.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatTask formats one task row.
// Format: "{ID:>4}  [ ] {TEXT}\n", with [x] and struck-through text when completed.
func FormatTask(w io.Writer, task service.Task, color bool) {
	text := normalizeText(task.Text)
	mark := " "
	if task.Completed {
		mark = "x"
		text = strike(text, color)
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", task.ID, mark, text)
}

// FormatView formats the title, one row per task and the pending input.
func FormatView(w io.Writer, view service.View, opts Options) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, Title)
	fmt.Fprintln(w, Separator)

	if len(view.Tasks) == 0 && !opts.Quiet {
		fmt.Fprintln(w, "no tasks")
	}
	for _, task := range view.Tasks {
		FormatTask(w, task, opts.Color)
	}

	if view.Input != "" {
		fmt.Fprintf(w, "> %s\n", normalizeText(view.Input))
	}
}

// FormatYAML dumps the view as a YAML document.
func FormatYAML(w io.Writer, view service.View) error {
	if view.Tasks == nil {
		view.Tasks = []service.Task{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	return enc.Close()
}

// strike marks text as struck through.
func strike(text string, color bool) string {
	if color {
		return strikeOn + text + strikeOff
	}
	return "~~" + text + "~~"
}

// normalizeText keeps a row on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
