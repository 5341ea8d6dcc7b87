package main

import (
	"errors"
	"fmt"
	"os"

	"xrun/internal/cli"
	"xrun/internal/cli/commands"
	"xrun/internal/config"
	"xrun/xunit"

	"github.com/spf13/cobra"

	// Sample suites under tests/
	_ "xrun/tests/support"
	_ "xrun/tests/unit"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "xrun",
		Short:         "Minimal xUnit-style test runner",
		Long:          `Discover registered test case types below the tests directory, run their setUp, test and tearDown methods and report every error.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, xunit.Default, version)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exit *commands.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
