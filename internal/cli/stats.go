package cli

import (
	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics",
	Long: `Display aggregate counts over the merged record set.

Examples:
  coursefinder stats
  coursefinder stats -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	stats := dataset.ComputeStats(records)
	return output.Output(outputFmt, &stats)
}
