package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtl/internal/cli"
	"gtl/internal/cli/commands"
	"gtl/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gtl",
		Short:         "Go test launcher front end",
		Long:          `Resolve type, method and package names of a Go code base into a discovery request for a test engine, with tag, engine and name pattern filters.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults; commands reload it once flags are parsed
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
