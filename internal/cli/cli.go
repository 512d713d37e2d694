// Package cli implements the patternbook command-line interface.
//
// This package provides commands for running the teaching demos, a small
// calculator, decorator chain files, and pattern structure diagrams. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
//   - run: Execute one, several, or all demos
//   - list: Show the demo catalog
//   - calc: Calculator operations (add, divide, factorial, ...)
//   - chain: Build a decorator chain from a YAML file
//   - viz: Render a pattern structure diagram
//   - tui: Interactive demo browser
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"patternbook/pkg/buildinfo"
	"patternbook/pkg/demo"
)

const (
	// appName is the application name used for directories and display.
	appName = "patternbook"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *demo.Registry
}

// New creates a new CLI instance with a default logger and the full demo
// catalog.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: demo.Catalog(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Patternbook runs classic design pattern demos",
		Long:         `Patternbook is a CLI tool collecting runnable demonstrations of classic object-oriented design patterns and core language concepts, each implemented as a small library package.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.chainCommand())
	root.AddCommand(c.vizCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// demoNameCompletion offers registered demo names for shell completion.
func (c *CLI) demoNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
}
