package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration files",
	Long: `Configuration files are looked up in this order:
  1. --config flag
  2. ~/.reciclamack/configs/<mode>.yaml
  3. ./configs/<mode>.yaml
  4. Built-in defaults

Examples:
  reciclamack config print reciclamack > ~/.reciclamack/configs/reciclamack.yaml
  reciclamack config validate ./my-config.yaml`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print <mode>",
	Short: "Print the built-in config for a mode",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		data := config.GetDefaultYAML(args[0])
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file against the schema",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := config.Parse(config.VariantClassic, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", args[0])
	},
}

func init() {
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configValidateCmd)
}
