package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Search order:
  --config <path>
  ~/.dragon/configs/dragon.yaml
  ./configs/dragon.yaml
  built-in defaults

Copy the output to one of those paths to customize the game.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, src, err := config.LoadDragonWithSource(flagConfig)
	if err != nil {
		return err
	}
	return printConfig(os.Stdout, cfg, src)
}

// printConfig writes a colored source header followed by cfg as YAML.
func printConfig(w io.Writer, cfg config.DragonConfig, src config.Source) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot render config: %w", err)
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "# source: %s\n", src)
	_, err = w.Write(data)
	return err
}
