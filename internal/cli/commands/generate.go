package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xrun/internal/config"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config *config.Config
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config) *GenerateCommand {
	return &GenerateCommand{config: cfg}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	created, err := gc.config.WriteDefault()
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s created in base path.\n", gc.config.ConfigFile)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s already present.\n", gc.config.ConfigFile)
	}
	return nil
}
