package commands

import (
	"context"
	"flag"
	"fmt"

	"tasklist/internal/exitcode"
	"tasklist/internal/web"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd serves the task list as an HTML page until interrupted.
type ServeCmd struct {
	addr string

	// Ready, if set, receives the bound address once the server listens.
	Ready chan<- string
}

func (c *ServeCmd) Name() string       { return "serve" }
func (c *ServeCmd) Aliases() []string  { return nil }
func (c *ServeCmd) Synopsis() string   { return "Serve the task list as a web page" }
func (c *ServeCmd) Usage() string      { return "tasklist serve [--addr <host:port>]" }
func (c *ServeCmd) NeedsSession() bool { return true }
func (c *ServeCmd) Mutates() bool      { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	addr := c.addr
	if addr == "" {
		addr = env.Config.Server.Address()
	}

	app := web.NewApp(env.Config.Server, env.Log, web.NewHandler(env.Service, env.Log))
	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "serving on http://%s\n", addr)
	}

	if err := web.Serve(ctx, app, addr, env.Log, c.Ready); err != nil {
		fmt.Fprintf(env.ErrOut, "error: serve failed: %v\n", err)
		return exitcode.ServeError
	}
	return exitcode.Success
}
