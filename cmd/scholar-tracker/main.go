// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-tracker CLI.
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

// defaultCSVPath is where the faculty dataset lives unless --csv says
// otherwise.
const defaultCSVPath = "faculty_scholar_data.csv"

// rootCmd is the base command for the scholar-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-tracker",
	Short: "Track faculty Google Scholar profiles and citation metrics",
	Long: `scholar-tracker maintains a CSV of faculty members, their Google Scholar
profile IDs, and their citation metrics.

Each pipeline stage is a subcommand: extract seeds the CSV from a Word
document of faculty summaries, discover finds missing Scholar IDs by
searching the web and verifying profile names, and update refreshes
citation counts and h-index values for records that already have an ID.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-tracker.yaml or ~/.config/scholar-tracker/config.yaml)")
	rootCmd.PersistentFlags().String("csv", defaultCSVPath, "path to the faculty dataset CSV")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-tracker"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// csvPath resolves the dataset path: an explicit --csv flag wins,
// then the config file, then the default.
func csvPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("csv")
	if cmd.Flags().Changed("csv") {
		return path
	}
	if v := viper.GetString("csv"); v != "" {
		return v
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
