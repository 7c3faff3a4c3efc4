package commands

import (
	"context"
	"flag"
	"strings"

	"tasklist/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
	Register(&InputCmd{})
}

// AddCmd implements the add command: the form's add trigger.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Add a task (or submit the pending input)" }
func (c *AddCmd) Usage() string      { return "tasklist add [text...]" }
func (c *AddCmd) NeedsSession() bool { return true }
func (c *AddCmd) Mutates() bool      { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run types the text into the pending input, if given, and submits it.
// Blank text leaves the list unchanged without an error.
func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	svc := env.Service
	if len(args) > 0 {
		svc.SetInput(strings.Join(args, " "))
	}

	before := len(svc.View().Tasks)
	svc.Submit()
	if len(svc.View().Tasks) == before {
		env.Log.Debugw("add_ignored_blank_input")
	}
	return exitcode.Success
}

// InputCmd sets the pending-input text without submitting it.
type InputCmd struct{}

func (c *InputCmd) Name() string       { return "input" }
func (c *InputCmd) Aliases() []string  { return []string{"type"} }
func (c *InputCmd) Synopsis() string   { return "Set the pending input" }
func (c *InputCmd) Usage() string      { return "tasklist input [text...]" }
func (c *InputCmd) NeedsSession() bool { return true }
func (c *InputCmd) Mutates() bool      { return true }

func (c *InputCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InputCmd) Run(ctx context.Context, env *Env, args []string) int {
	env.Service.SetInput(strings.Join(args, " "))
	return exitcode.Success
}
