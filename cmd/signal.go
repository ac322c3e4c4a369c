package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Interruptible returns a context cancelled by the first SIGINT or SIGTERM.
// A second signal exits the process with status 1. Call stop once the
// context is no longer needed.
func Interruptible(parent context.Context, stderr io.Writer) (ctx context.Context, stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, release := watchSignals(parent, sigChan, stderr, os.Exit)

	return ctx, func() {
		signal.Stop(sigChan)
		release()
	}
}

func watchSignals(
	parent context.Context,
	sigChan <-chan os.Signal,
	stderr io.Writer,
	exit func(int),
) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(stderr, "\nInterrupting...")
			cancel()
		case <-done:
			return
		}

		// Second signal forces exit
		select {
		case <-sigChan:
			fmt.Fprintln(stderr, "\nForce exiting...")
			exit(1)
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() { close(done) })
		cancel()
	}
}
