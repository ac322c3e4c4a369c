package cmd

import (
	"fmt"

	"github.com/rana/chainnexus/internal/version"
)

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (c *VersionCmd) Run(cmdCtx *Context) error {
	_, err := fmt.Fprintln(cmdCtx.Stdout, version.String())
	return err
}
