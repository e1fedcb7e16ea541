package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration 'snake play' would use, as YAML.

Search order: --config path, ~/.snake/snake.yaml, ./configs/snake.yaml,
then the built-in defaults.

Examples:
  snake config
  snake config --difficulty hard
  snake config --defaults > ~/.snake/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	file, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Validate before printing so a broken file is reported, not echoed
	if _, err := file.Game(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", source, err)
		os.Exit(1)
	}

	data, err := file.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
