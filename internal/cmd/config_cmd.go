package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/internal/config"
)

var configFilePath string

func init() {
	configInitCmd.Flags().StringVarP(&configFilePath, "file", "f", "", "where to write the config file (default $HOME/.config/timefmt/timefmt.yaml)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("timefmt: config: could not find home directory: %w", err)
	}
	return filepath.Join(home, ".config", "timefmt", "timefmt.yaml"), nil
}

func writeValidation(w io.Writer, problems []string) error {
	if len(problems) == 0 {
		fmt.Fprintln(w, "configuration ok")
		return nil
	}

	for _, curr := range problems {
		fmt.Fprintf(w, "- %s\n", curr)
	}
	return fmt.Errorf("timefmt: config: found %d problem(s)", len(problems))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage the timefmt config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "writes a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath
		if path == "" {
			var err error
			path, err = defaultConfigPath()
			if err != nil {
				return err
			}
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "checks the current config for problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeValidation(cmd.OutOrStdout(), config.ValidateConfig())
	},
}
