package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xrun/internal/cli"
	"xrun/internal/config"
	"xrun/internal/storage"
	"xrun/internal/ui"
	"xrun/xunit"
)

// ExitError carries a non-zero exit status without an error message
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Generate *GenerateCommand
	Errors   *ErrorsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *xunit.Registry, version string) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, registry, jsonStorage, version),
		List:     NewListCommand(cfg, registry),
		Generate: NewGenerateCommand(cfg),
		Errors:   NewErrorsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		return cfg.Load()
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered test cases",
		Long:    "Discover test case types below the test directory and execute their hooks and test methods",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory containing tests/ and xrun.yaml")
	runCmd.Flags().StringVarP(&flags.Selector, "select", "s", "", "Only run types whose identifier contains this value (overrides test-directory)")
	runCmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Print traces and per-type progress messages")
	runCmd.Flags().BoolVar(&flags.ProgressBar, "bar", false, "Show a progress spinner instead of progress markers")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test case types",
		Long:    "Scan and list the test case types a run would consider, without executing them",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory containing tests/ and xrun.yaml")
	listCmd.Flags().StringVarP(&flags.Selector, "select", "s", "", "Only list types whose identifier contains this value (overrides test-directory)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List hooks and test methods of each type")
	rootCmd.AddCommand(listCmd)

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a default xrun.yaml",
		Long:  "Write a settings file with default values to the project directory unless one exists",
		RunE:  c.Generate.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	generateCmd.Flags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory")
	rootCmd.AddCommand(generateCmd)

	// Errors command
	errorsCmd := &cobra.Command{
		Use:     "errors",
		Short:   "View errors of the last run interactively",
		Long:    "Display the error records of the last run in an interactive viewer",
		RunE:    c.Errors.Execute,
		PreRunE: loadConfig,
	}
	errorsCmd.Flags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory")
	rootCmd.AddCommand(errorsCmd)
}
