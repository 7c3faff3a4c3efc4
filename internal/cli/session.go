package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"tasklist/internal/commands"
	"tasklist/internal/exitcode"
)

const (
	sessionCommand = "session"
	prompt         = "> "
)

// runSession reads one command per line from in and applies it to a single
// task list that lives until quit, end of input, or cancellation of ctx.
// Lines are handled strictly one after another.
//
// The exit code is UserError if any line failed, Success otherwise.
func (d *Dispatcher) runSession(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(sessionCommand, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs)

	rest, code := parseFlags(fs, args, errOut)
	if code != exitcode.Success {
		return code
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}

	env, code := d.newEnv(ctx, common, true, out, errOut)
	if code != exitcode.Success {
		return code
	}
	defer env.Log.Sync() //nolint:errcheck

	interactive := isTerminal(in)
	env.Log.Debugw("session_started", "interactive", interactive)
	if interactive && !env.Config.Quiet {
		commands.Render(env.Config, env.Service, out)
	}

	lines := readLines(ctx, in, env.Log.Warnw)
	result := exitcode.Success
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}

		select {
		case <-ctx.Done():
			env.Log.Debugw("session_cancelled")
			return result
		case line, ok := <-lines:
			if !ok {
				env.Log.Debugw("session_ended", "reason", "eof")
				return result
			}
			quit, code := d.execLine(ctx, env, line)
			if code != exitcode.Success {
				result = exitcode.UserError
			}
			if quit {
				env.Log.Debugw("session_ended", "reason", "quit")
				return result
			}
		}
	}
}

// execLine runs one session line. It reports whether the session should end.
func (d *Dispatcher) execLine(ctx context.Context, env *commands.Env, line string) (bool, int) {
	name, rest := splitLine(line)
	if name == "" {
		return false, exitcode.Success
	}

	if name == sessionCommand {
		fmt.Fprintln(env.ErrOut, "error: already in a session")
		return false, exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(env.ErrOut, "error: unknown command: %s\n", name)
		return false, exitcode.UserError
	}
	if cmd.Name() == "quit" {
		return true, exitcode.Success
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)

	// Commands without flags receive the rest of the line verbatim so that
	// typed text reaches the task list exactly as entered.
	var args []string
	if hasFlags(fs) {
		var code int
		args, code = parseFlags(fs, strings.Fields(rest), env.ErrOut)
		if code != exitcode.Success {
			return false, code
		}
	} else if rest != "" {
		args = []string{rest}
	}

	return false, runAndRender(ctx, cmd, env, args)
}

// splitLine splits a session line into the command name and the remainder,
// with the whitespace separating them removed.
func splitLine(line string) (string, string) {
	line = strings.TrimSuffix(line, "\r")
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

func hasFlags(fs *flag.FlagSet) bool {
	found := false
	fs.VisitAll(func(*flag.Flag) { found = true })
	return found
}

// readLines delivers lines from r until EOF or until ctx is done.
func readLines(ctx context.Context, r io.Reader, warn func(msg string, kv ...any)) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			warn("session_read_failed", "error", err)
		}
	}()
	return lines
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
