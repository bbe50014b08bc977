package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <course|id>",
	Short: "Show course details",
	Long: `Show detailed information about a specific course.

The identifier can be:
  - Course name (case-insensitive, partial match)
  - Record ID

Examples:
  coursefinder show "computer science"
  coursefinder show --university=Oxford medicine`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showUniversity string

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showUniversity, "university", "", "Disambiguate by university")
}

func runShow(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	// Try ID first, then partial course-name match.
	for i := range records {
		if records[i].ID == identifier {
			return output.Output(outputFmt, &records[i])
		}
	}

	needle := strings.ToLower(identifier)
	uni := strings.ToLower(showUniversity)
	for i := range records {
		if !strings.Contains(strings.ToLower(records[i].Course), needle) {
			continue
		}
		if uni != "" && !strings.Contains(strings.ToLower(records[i].University), uni) {
			continue
		}
		return output.Output(outputFmt, &records[i])
	}

	return fmt.Errorf("course not found: %s", identifier)
}
