package commands

import (
	"context"
	"flag"
	"fmt"

	"tasklist/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
	Register(&QuitCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tasklist help" }
func (c *HelpCmd) NeedsSession() bool { return false }
func (c *HelpCmd) Mutates() bool      { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	return exitcode.Success
}

// QuitCmd ends an interactive session. Outside a session it does nothing.
type QuitCmd struct{}

func (c *QuitCmd) Name() string       { return "quit" }
func (c *QuitCmd) Aliases() []string  { return []string{"exit"} }
func (c *QuitCmd) Synopsis() string   { return "End the session" }
func (c *QuitCmd) Usage() string      { return "quit" }
func (c *QuitCmd) NeedsSession() bool { return false }
func (c *QuitCmd) Mutates() bool      { return false }

func (c *QuitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *QuitCmd) Run(ctx context.Context, env *Env, args []string) int {
	return exitcode.Success
}

const helpText = `Usage:
  tasklist                                    Start an interactive session
  tasklist session [common flags]             Start an interactive session
  tasklist serve [common flags] [--addr <host:port>]
  tasklist add [common flags] [text...]
  tasklist input [common flags] [text...]
  tasklist toggle [common flags] <ref>
  tasklist rm [common flags] <ref>
  tasklist list [common flags] [--format text|yaml]
  tasklist help
  tasklist version

Session commands:
  add [text...]     Add a task; without text, submit the pending input
  input [text...]   Set the pending input; without text, clear it
  toggle <ref>      Flip a task between active and completed
  rm <ref>          Delete a task
  list [--format text|yaml]
  serve [--addr <host:port>]
  help
  quit

Task references:
  3, #3, task-checkbox-3, delete-button-3

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
