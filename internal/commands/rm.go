package commands

import (
	"context"
	"flag"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "tasklist rm <ref>" }
func (c *RmCmd) NeedsSession() bool { return true }
func (c *RmCmd) Mutates() bool      { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	return runWithRef(env, args, env.Service.DeleteTask)
}
