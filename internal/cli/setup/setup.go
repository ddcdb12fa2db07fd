package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up kanban on this machine",
		Long:  `Write or inspect the kanban configuration file.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
