// Package nexus is the ChainNexus library. The command line hands it the
// parsed verbosity flag through [Run].
package nexus

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/rana/chainnexus/internal/config"
	"github.com/rana/chainnexus/internal/version"
)

// Runner executes a ChainNexus run. The zero value logs to os.Stderr and
// reads the configuration with [config.Load].
type Runner struct {
	Stderr     io.Writer
	LoadConfig func() (*config.Config, error)
}

// Run executes a run with the default [Runner].
func Run(ctx context.Context, verbose bool) error {
	var r Runner
	return r.Run(ctx, verbose)
}

// Run loads the configuration, sets up logging for the requested verbosity
// and reports the run. Failures are returned as *Error.
func (r *Runner) Run(ctx context.Context, verbose bool) error {
	load := r.LoadConfig
	if load == nil {
		load = config.Load
	}

	cfg, err := load()
	if err != nil {
		return &Error{Op: "load config", Err: err, Code: ExitConfigError}
	}

	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := newLogger(stderr, cfg, verbose)

	logger.Info("starting", version.Attr())
	logger.Debug("configuration",
		slog.String("path", config.Path()),
		slog.String("level", cfg.Log.Level),
		slog.String("format", cfg.Log.Format),
		slog.Bool("verbose", verbose))

	if err := ctx.Err(); err != nil {
		logger.Warn("interrupted", slog.Any("error", err))
		return &Error{Op: "run", Err: err, Code: ExitInterrupted}
	}

	logger.Info("finished")

	return nil
}
