package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/logger"
	"tasklist/internal/service"
)

// SessionFactory creates the task list a process works on.
// It is called at most once per Run.
type SessionFactory func(ctx context.Context, cfg *config.Config, log *logger.Logger) (service.Service, error)

// LoggerFactory builds the logger once the configuration is known.
type LoggerFactory func(cfg *config.Config) (*logger.Logger, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry  *commands.Registry
	factory   SessionFactory
	newLogger LoggerFactory
}

// NewDispatcher creates a new dispatcher with the given registry and session factory.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		newLogger: func(cfg *config.Config) (*logger.Logger, error) {
			return logger.New(cfg.Logger, cfg.Debug)
		},
	}
}

// WithLoggerFactory replaces the logger constructor (for testing).
func (d *Dispatcher) WithLoggerFactory(f LoggerFactory) *Dispatcher {
	d.newLogger = f
	return d
}

// commonFlags are accepted by every command and by session.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configDir, "config", "", "")
	fs.BoolVar(&c.quiet, "quiet", false, "")
	fs.BoolVar(&c.debug, "debug", false, "")
}

// Run parses arguments and dispatches to the appropriate command.
// With no arguments, or with "session", it runs an interactive session on in.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.runSession(ctx, nil, in, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == sessionCommand {
		return d.runSession(ctx, args[1:], in, out, errOut)
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	positionalArgs, code := parseFlags(fs, args, errOut)
	if code != exitcode.Success {
		return code
	}

	env, code := d.newEnv(ctx, common, cmd.NeedsSession(), out, errOut)
	if code != exitcode.Success {
		return code
	}
	defer env.Log.Sync() //nolint:errcheck

	return runAndRender(ctx, cmd, env, positionalArgs)
}

// newEnv loads configuration, builds the logger and, if needed, the task list.
func (d *Dispatcher) newEnv(ctx context.Context, common commonFlags, needsSession bool, out, errOut io.Writer) (*commands.Env, int) {
	cfg, err := config.Load(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return nil, exitcode.ConfigError
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug

	log, err := d.newLogger(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return nil, exitcode.ConfigError
	}

	env := &commands.Env{Config: cfg, Log: log, Out: out, ErrOut: errOut}
	if needsSession {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no task list available")
			return nil, exitcode.UserError
		}
		env.Service, err = d.factory(ctx, cfg, log)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return nil, exitcode.UserError
		}
	}
	return env, exitcode.Success
}

// runAndRender runs cmd and, after a successful change to the list, shows it.
func runAndRender(ctx context.Context, cmd commands.Command, env *commands.Env, args []string) int {
	code := cmd.Run(ctx, env, args)
	if code == exitcode.Success && cmd.Mutates() && !env.Config.Quiet {
		commands.Render(env.Config, env.Service, env.Out)
	}
	return code
}

// parseFlags parses args into fs and reports flag errors the way every command does.
// Returns the positional arguments, or a non-zero exit code.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) ([]string, int) {
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return nil, exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return nil, exitcode.UserError
	}
	return positionalArgs, exitcode.Success
}
