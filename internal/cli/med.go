package cli

import (
	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/output"
	"github.com/seetoh/coursefinder/internal/query"
)

var medCmd = &cobra.Command{
	Use:   "med",
	Short: "List medical schools and their requirements",
	Long: `List medical schools with admission tests, interview formats and
international admissions statistics.

Examples:
  coursefinder med                  # All medical schools
  coursefinder med --test=UCAT      # UCAT schools only
  coursefinder med --smc            # Schools on the SMC register`,
	RunE: runMed,
}

var (
	medUniversity []string
	medTest       []string
	medSMC        bool
)

func init() {
	rootCmd.AddCommand(medCmd)

	medCmd.Flags().StringSliceVar(&medUniversity, "university", nil, "Filter by university (repeatable)")
	medCmd.Flags().StringSliceVar(&medTest, "test", nil, "Filter by admission test category (UCAT, Other, Unknown)")
	medCmd.Flags().BoolVar(&medSMC, "smc", false, "Only schools on the Singapore Medical Council register")
}

func runMed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	rows, err := dataset.LoadMedSchools(cfg.Data.SourcePaths().MedSchools)
	if err != nil {
		return err
	}

	filters := query.MedFilters{
		Universities:    medUniversity,
		TestCategories:  medTest,
		SMCApprovedOnly: medSMC,
	}
	return output.Output(outputFmt, filters.Apply(rows))
}
