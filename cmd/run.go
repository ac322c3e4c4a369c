package cmd

import "errors"

// RunCmd hands the parsed flags to the library
type RunCmd struct{}

// Run executes the run command
func (c *RunCmd) Run(cmdCtx *Context) error {
	if cmdCtx.run == nil {
		return errors.New("no run operation configured")
	}
	return cmdCtx.run(cmdCtx.Context, cmdCtx.Config.Verbose)
}
