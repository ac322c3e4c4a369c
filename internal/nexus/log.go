package nexus

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rana/chainnexus/internal/config"
	"golang.org/x/term"
)

// newLogger builds the logger for a single run. It does not touch the
// default logger.
func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if useJSON(w, cfg.Log.Format) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func useJSON(w io.Writer, format string) bool {
	switch strings.ToLower(format) {
	case config.FormatJSON:
		return true
	case config.FormatText:
		return false
	}

	// auto: humans get text, pipes and files get JSON
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}
