package main

import (
	"context"
	"os"

	"github.com/rana/chainnexus/cmd"
	"github.com/rana/chainnexus/internal/nexus"
)

func main() {
	ctx, stop := cmd.Interruptible(context.Background(), os.Stderr)

	code := cmd.Execute(ctx, os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nexus.Run)

	stop()
	os.Exit(code)
}
