package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/service"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *ListCmd) SetFormat(format string) {
	c.format = format
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "Show the task list" }
func (c *ListCmd) Usage() string      { return "tasklist list [--format text|yaml]" }
func (c *ListCmd) NeedsSession() bool { return true }
func (c *ListCmd) Mutates() bool      { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", formatText, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	switch c.format {
	case "", formatText:
		Render(env.Config, env.Service, env.Out)
	case formatYAML:
		if err := output.FormatYAML(env.Out, env.Service.View()); err != nil {
			fmt.Fprintf(env.ErrOut, "error: %v\n", err)
			return exitcode.UserError
		}
	default:
		fmt.Fprintf(env.ErrOut, "error: invalid format: %s\n", c.format)
		return exitcode.UserError
	}
	return exitcode.Success
}

// Render writes the current view of svc to out using the display settings of cfg.
func Render(cfg *config.Config, svc service.Service, out io.Writer) {
	output.FormatView(out, svc.View(), output.Options{
		Color: output.UseColor(cfg.Display.Color, out),
		Quiet: cfg.Quiet,
	})
}
