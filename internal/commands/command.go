// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/logger"
	"tasklist/internal/service"
)

// Env carries everything a command may use while it runs.
type Env struct {
	// Config is always provided.
	Config *config.Config

	// Service is nil if NeedsSession() returns false.
	Service service.Service

	// Log is always provided; it may be a no-op logger.
	Log *logger.Logger

	Out    io.Writer
	ErrOut io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSession returns true if the command operates on the task list.
	// Commands like help and version return false.
	NeedsSession() bool

	// Mutates returns true if the command changes the task list, in which
	// case the dispatcher re-renders the list after a successful run.
	Mutates() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
