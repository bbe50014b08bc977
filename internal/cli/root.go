package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/dataset"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coursefinder",
	Short: "Find and compare UK undergraduate courses",
	Long: `coursefinder merges UK undergraduate course listings with world
university rankings, medical-school requirements and admissions
statistics into one queryable record set.

It provides:
  - Keyword search with include/exclude terms
  - Grade filtering against A-level and IB offers
  - Blended ranking scores (global vs subject weight)
  - A medical-school requirements view`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/coursefinder/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "coursefinder", "config.toml")
	}
}

// recordCache holds the merged record set for the lifetime of the process,
// so subcommands running in sequence reuse one load.
var recordCache *dataset.Cache

func loadRecords(cfg *config.Config) ([]dataset.Course, error) {
	if recordCache == nil {
		paths := cfg.Data.SourcePaths()
		recordCache = dataset.NewCache(cfg.Cache.TTL(), func() ([]dataset.Course, error) {
			src, err := dataset.LoadSources(paths)
			if err != nil {
				return nil, err
			}
			return dataset.Merge(src), nil
		})
	}
	return recordCache.Records()
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("coursefinder %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
