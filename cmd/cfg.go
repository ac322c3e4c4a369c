package cmd

import (
	"fmt"
	"strings"

	"github.com/rana/chainnexus/internal/config"
)

// CfgCmd manages configuration
type CfgCmd struct {
	Show      CfgShowCmd      `cmd:"" default:"1" help:"Show current configuration (default)"`
	LogLevel  CfgLogLevelCmd  `cmd:"" help:"Set log level (debug/info/warn/error)"`
	LogFormat CfgLogFormatCmd `cmd:"" help:"Set log format (auto/text/json)"`
}

// CfgShowCmd prints the current configuration
type CfgShowCmd struct{}

func (c *CfgShowCmd) Run(cmdCtx *Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmdCtx.Stdout
	fmt.Fprintf(out, "Current configuration (%s):\n\n", config.Path())
	fmt.Fprintf(out, "Version:    %d\n", cfg.Version)
	fmt.Fprintf(out, "Log level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "Log format: %s\n", cfg.Log.Format)

	return nil
}

// CfgLogLevelCmd sets the log level
type CfgLogLevelCmd struct {
	Level string `arg:"" help:"Log level (debug/info/warn/error)"`
}

func (c *CfgLogLevelCmd) Run(cmdCtx *Context) error {
	level := strings.ToLower(c.Level)
	if _, err := config.ParseLevel(level); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Log.Level = level
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmdCtx.Stdout, "Log level set to: %s\n", level)
	return nil
}

// CfgLogFormatCmd sets the log format
type CfgLogFormatCmd struct {
	Format string `arg:"" help:"Log format: auto, text or json"`
}

func (c *CfgLogFormatCmd) Run(cmdCtx *Context) error {
	format := strings.ToLower(c.Format)
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Log.Format = format
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmdCtx.Stdout, "Log format set to: %s\n", format)
	if format == config.FormatAuto {
		fmt.Fprintln(cmdCtx.Stdout, "Text on a terminal, JSON otherwise")
	}
	return nil
}
