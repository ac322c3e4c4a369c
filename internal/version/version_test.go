package version

import (
	"bytes"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	lines := strings.Split(String(), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, About, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "  version:    "+Version, lines[2])
	assert.Equal(t, "  commit:     "+GitCommit, lines[3])
	assert.Equal(t, "  built:      "+BuildDate, lines[4])
	assert.Equal(t, "  toolchain:  "+runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH, lines[5])
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestAttr(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("starting", Attr())

	assert.Contains(t, buf.String(), "build.version="+Version)
	assert.Contains(t, buf.String(), "build.commit="+GitCommit)
}
