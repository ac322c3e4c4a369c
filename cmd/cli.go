package cmd

import "github.com/alecthomas/kong"

// CLI represents the command-line interface
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose output"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Start RunCmd     `cmd:"" name:"run" default:"1" help:"Run ChainNexus (default)"`
	Info  VersionCmd `cmd:"" name:"version" help:"Show version information"`
	Cfg   CfgCmd     `cmd:"" help:"Manage configuration"`
}

// CliConfig is the parsed command line handed to the library
type CliConfig struct {
	Verbose bool
}

// Config returns the parsed flags as a CliConfig
func (c *CLI) Config() CliConfig {
	return CliConfig{Verbose: c.Verbose}
}
