package version

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Build-time variables, set with
//
//	go build -ldflags "-X github.com/rana/chainnexus/internal/version.Version=v1.2.3"
//
// Unset values report "dev" and "unknown".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// About is the one-line description shown in help output.
const About = "ChainNexus - a Go implementation"

// String returns the report printed by the version command.
func String() string {
	return fmt.Sprintf("%s\n\n  version:    %s\n  commit:     %s\n  built:      %s\n  toolchain:  %s %s/%s",
		About, Version, GitCommit, BuildDate,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number. It backs the --version flag.
func Short() string {
	return Version
}

// Attr groups the build metadata for structured log records.
func Attr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", GitCommit),
		slog.String("date", BuildDate),
		slog.String("go", runtime.Version()),
	)
}
