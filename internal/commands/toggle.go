package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"tasklist/internal/exitcode"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task between active and completed" }
func (c *ToggleCmd) Usage() string      { return "tasklist toggle <ref>" }
func (c *ToggleCmd) NeedsSession() bool { return true }
func (c *ToggleCmd) Mutates() bool      { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, env *Env, args []string) int {
	return runWithRef(env, args, env.Service.ToggleTask)
}

// runWithRef parses the task reference in args and applies op to it.
// Unknown ids are passed through; the task list ignores them.
func runWithRef(env *Env, args []string, op func(id int)) int {
	id, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(env.ErrOut, "error: task reference required")
		} else {
			fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	op(id)
	return exitcode.Success
}
