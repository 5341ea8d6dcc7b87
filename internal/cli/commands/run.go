package commands

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"xrun/internal/config"
	"xrun/internal/discovery"
	"xrun/internal/domain"
	"xrun/internal/execution"
	"xrun/internal/logging"
	"xrun/internal/results"
	"xrun/internal/storage"
	"xrun/internal/ui"
	"xrun/xunit"
)

// ExecutorFactory builds the executor for one run
type ExecutorFactory func(cfg *config.Config, out io.Writer, log zerolog.Logger) execution.Executor

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	storage     storage.Storage
	version     string
	newExecutor ExecutorFactory
	openHistory func(dsn string) (storage.History, error)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, registry *xunit.Registry, st storage.Storage, version string) *RunCommand {
	return &RunCommand{
		config:  cfg,
		storage: st,
		version: version,
		newExecutor: func(cfg *config.Config, out io.Writer, log zerolog.Logger) execution.Executor {
			return execution.NewRunner(cfg, registry, out, log)
		},
		openHistory: func(dsn string) (storage.History, error) {
			history, err := storage.OpenMySQLHistory(dsn)
			if err != nil {
				return nil, err
			}
			return history, nil
		},
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	debug := rc.config.Debug()
	log := logging.New(logging.Config{Debug: debug, Output: cmd.ErrOrStderr()})
	formatter := ui.NewFormatter(out, debug)

	formatter.PrintHeader(rc.version)

	var progress results.Progress = ui.NewMarkers(out)
	var bar *ui.ProgressBar
	if rc.config.Flags.ProgressBar {
		bar = ui.NewProgressBar(cmd.ErrOrStderr())
		progress = bar
	}

	summary, err := rc.newExecutor(rc.config, out, log).Run(progress)
	if bar != nil {
		bar.Finish()
	}

	if errors.Is(err, discovery.ErrNoTests) {
		formatter.PrintNoTests()
		return &ExitError{Code: 1}
	}
	if err != nil {
		formatter.PrintFatal(err)
		return &ExitError{Code: 1}
	}

	formatter.PrintSummary(summary)

	// Results are kept for the errors viewer; losing them does not change the outcome
	if err := rc.storage.Save(summary, rc.config.Selector()); err != nil {
		log.Warn().Err(err).Msg("Failed to save run results")
	}
	rc.recordHistory(summary, log)

	if summary.Failed() {
		return &ExitError{Code: summary.ExitCode()}
	}
	return nil
}

func (rc *RunCommand) recordHistory(summary *domain.RunSummary, log zerolog.Logger) {
	dsn := rc.config.HistoryDSN()
	if dsn == "" {
		return
	}

	history, err := rc.openHistory(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("Run history unavailable")
		return
	}
	defer history.Close()

	if err := history.Record(summary, rc.config.Selector()); err != nil {
		log.Warn().Err(err).Msg("Failed to record run history")
	}
}
