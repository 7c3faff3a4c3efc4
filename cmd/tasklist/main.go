// Package main is the entry point for the tasklist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasklist/internal/cli"
	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/logger"
	"tasklist/internal/service"
	"tasklist/internal/tasks"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Every process works on its own in-memory list
	factory := func(ctx context.Context, cfg *config.Config, log *logger.Logger) (service.Service, error) {
		return tasks.New(tasks.WithLogger(log.SugaredLogger)), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
