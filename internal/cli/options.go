package cli

import (
	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/output"
	"github.com/seetoh/coursefinder/internal/query"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show available filter values",
	Long: `Show the distinct universities, domains, study modes and durations
present in the record set, plus the observed grade-score ranges.`,
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, query.CollectOptions(records))
}
