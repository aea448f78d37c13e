package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	configOutput string
	configForce  bool
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Generate blsdkg configuration files.

Configuration files use YAML format and can specify default values for
all command-line flags. Command-line flags override config file values.

Environment variables can also be used with the BLSDKG_ prefix.
For example: BLSDKG_CODEC=cbor`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample configuration file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVarP(&configOutput, "output", "o", "", "output path (default: $HOME/.blsdkg/config.yaml)")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite existing config file")

	configCmd.AddCommand(configInitCmd)
}

const sampleConfig = `# blsdkg configuration file
# Command-line flags override these values

# Serialization codec for broadcast and share files
# Options: json, cbor, msgpack, yaml
codec: json

# Verbose output
verbose: false

deal:
  threshold: 2
  participants: 3
  id: 1
  seed: ""        # hex; testing only, leave empty for crypto/rand
  output: "."

verify:
  threshold: 2
  participants: 3
  broadcast: ""
  share: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	outputPath := configOutput
	if outputPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		outputPath = filepath.Join(homeDir, ".blsdkg", "config.yaml")
	}

	if _, err := os.Stat(outputPath); err == nil && !configForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(sampleConfig), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", outputPath)
	return nil
}
