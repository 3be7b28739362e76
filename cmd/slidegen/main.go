// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidegen CLI, which derives a
// slide deck from a project README: extract named sections, classify
// bullet nesting, and render the ordered slide list to an artifact.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidegen CLI.
var rootCmd = &cobra.Command{
	Use:   "slidegen",
	Short: "Derive a slide deck from a project README",
	Long: `slidegen reads a markdown README, extracts a fixed set of named
sections (a feature bullet list, a fenced workflow diagram), classifies
bullet nesting levels, and renders the resulting slide sequence.

Sections missing from the document are skipped silently; a deck plan
file can append authored slides after the extracted ones.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidegen.yaml or ~/.config/slidegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidegen"))
		}
	}

	viper.SetEnvPrefix("SLIDEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stateDir resolves the history directory for a command: an explicit
// flag wins, then the config file, then the flag default.
func stateDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("state-dir")
	if !cmd.Flags().Changed("state-dir") {
		if v := viper.GetString("history.state_dir"); v != "" {
			dir = v
		}
	}
	return dir
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
