package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xrun/internal/config"
	"xrun/internal/discovery"
	"xrun/internal/logging"
	"xrun/internal/ui"
	"xrun/xunit"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *xunit.Registry
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, registry *xunit.Registry) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: registry,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	log := logging.New(logging.Config{Debug: lc.config.Debug(), Output: cmd.ErrOrStderr()})
	discoverer := discovery.NewDiscoverer(discovery.OptionsFrom(lc.config), lc.registry, log)

	seq, err := discoverer.Discover(lc.config.GetTestPath())
	if errors.Is(err, discovery.ErrNoTests) {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}
	if err != nil {
		return err
	}

	var types []*xunit.Type
	for typ, err := range seq {
		if err != nil {
			return err
		}
		types = append(types, typ)
	}

	if len(types) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No test case types matched")
		return nil
	}

	ui.NewFormatter(cmd.OutOrStdout(), false).PrintTypeList(types, lc.config.Flags.TestCases)
	return nil
}
