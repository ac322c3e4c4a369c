package cmd

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/rana/chainnexus/internal/version"
)

// exitStatus unwinds Execute when kong asks to exit.
type exitStatus int

// Execute parses args, runs the selected command and returns the process exit
// code. Parse failures never reach run. Errors implementing kong.ExitCoder
// choose their own exit code.
func Execute(ctx context.Context, args []string, stdio IO, run RunFunc) (exitCode int) {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("chainnexus"),
		kong.Description(version.About),
		kong.Vars{"version": version.Short()},
		kong.Writers(stdio.Stdout, stdio.Stderr),
		kong.UsageOnError(),
		kong.Exit(func(code int) { panic(exitStatus(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "chainnexus: %v\n", err)
		return 1
	}

	// Help, version and fatal errors end up here through kong.Exit.
	defer func() {
		if r := recover(); r != nil {
			code, ok := r.(exitStatus)
			if !ok {
				panic(r)
			}
			exitCode = int(code)
		}
	}()

	kongCtx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	err = kongCtx.Run(&Context{
		Context: ctx,
		IO:      stdio,
		Config:  cli.Config(),
		run:     run,
	})
	kongCtx.FatalIfErrorf(err)

	return 0
}
