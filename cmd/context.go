package cmd

import (
	"context"
	"io"
)

// RunFunc is the library operation invoked by the run command
type RunFunc func(ctx context.Context, verbose bool) error

// IO provides the output streams for commands
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Context is bound to every command's Run method
type Context struct {
	context.Context
	IO

	Config CliConfig
	run    RunFunc
}
