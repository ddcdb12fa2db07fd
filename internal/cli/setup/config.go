package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
)

// ErrConfigExists is returned when a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default config file",
		Long: `Write a config file with every setting at its default value.

The file lives at $XDG_CONFIG_HOME/kanban/config.yaml (or
~/.config/kanban/config.yaml). KANBAN_STORAGE_BACKEND, KANBAN_DB_PATH,
KANBAN_REDIS_ADDR and KANBAN_LOG_LEVEL override it at run time.

Examples:
  # Write defaults
  kanban setup config

  # Print the effective configuration
  kanban setup config --check

  # Overwrite an existing file
  kanban setup config --force
`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().Bool("check", false, "Print the effective configuration instead of writing")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	check, _ := cmd.Flags().GetBool("check")
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return formatter.FailWith("CONFIG_PATH_ERROR", cli.ExitError, err)
	}

	if check {
		cfg, err := config.Load()
		if err != nil {
			return formatter.FailWith("CONFIG_PARSE_ERROR", cli.ExitDataErr, err)
		}
		if formatter.JSON {
			return formatter.Success(map[string]interface{}{
				"path":   path,
				"config": cfg,
			})
		}
		if !formatter.Quiet {
			formatter.Println(styles.SubtleStyle.Render("# " + path))
		}
		formatter.Println(cfg.String())
		return nil
	}

	if _, err := os.Stat(path); err == nil && !force {
		_ = formatter.ErrorWithSuggestion("CONFIG_EXISTS",
			fmt.Sprintf("%s: %s", ErrConfigExists, path), "pass --force to overwrite it")
		return &cli.CommandError{Code: cli.ExitUsage, Err: ErrConfigExists}
	}

	if err := config.Default().Save(); err != nil {
		return formatter.FailWith("CONFIG_WRITE_ERROR", cli.ExitError, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"path": path})
	}
	formatter.Println(styles.SuccessStyle.Render("✓ Wrote " + path))
	return nil
}
