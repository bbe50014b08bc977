package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/query"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export courses to CSV or JSON",
	Long: `Export the merged course records to a file.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of course objects

Examples:
  coursefinder export --format=csv > courses.csv
  coursefinder export --format=json --domain="Medicine & Health" > med.json`,
	RunE: runExport,
}

var (
	exportFormat string
	exportDomain []string
	exportSearch string
	exportLimit  int
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
	exportCmd.Flags().StringSliceVar(&exportDomain, "domain", nil, "Filter by subject domain (repeatable)")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Course name keywords (prefix with - to exclude)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "Maximum rows (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	filters := query.Filters{Domains: exportDomain, Search: exportSearch}
	results := filters.Apply(records)
	results = query.WithScores(results, cfg.Scoring.GlobalWeight)
	results = query.Sort(results, query.SortWeightedScore, true)

	limit := cfg.Export.MaxRows
	if exportLimit > 0 {
		limit = exportLimit
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	switch exportFormat {
	case "csv":
		return exportCSV(results)
	case "json":
		return exportJSON(results)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
}

// ExportRow represents a row in the export (with computed fields flattened)
type ExportRow struct {
	ID            string `json:"id"`
	University    string `json:"university"`
	Course        string `json:"course"`
	Domain        string `json:"domain"`
	StudyMode     string `json:"study_mode"`
	Duration      string `json:"duration"`
	ALevelGrades  string `json:"alevel_grades"`
	ALevelScore   string `json:"alevel_score"`
	IBPoints      string `json:"ib_points"`
	QSGlobalRank  string `json:"qs_global_rank"`
	THERank       string `json:"the_rank"`
	QSSubjectRank string `json:"qs_subject_rank"`
	WeightedScore string `json:"weighted_score"`
	OfferRate     string `json:"offer_rate_pct"`
	CourseURL     string `json:"course_url"`
}

func toExportRow(c dataset.Course) ExportRow {
	row := ExportRow{
		ID:           c.ID,
		University:   c.University,
		Course:       c.Course,
		Domain:       c.Domain,
		StudyMode:    c.StudyMode,
		Duration:     c.Duration,
		ALevelGrades: c.ALevelGrades,
		CourseURL:    c.CourseURL,
	}
	if c.ALevelScore != nil {
		row.ALevelScore = fmt.Sprintf("%d", *c.ALevelScore)
	}
	if c.IBScore != nil {
		row.IBPoints = fmt.Sprintf("%d", *c.IBScore)
	}
	if c.QSGlobalRank != nil {
		row.QSGlobalRank = fmt.Sprintf("%g", *c.QSGlobalRank)
	}
	if c.THERank != nil {
		row.THERank = fmt.Sprintf("%g", *c.THERank)
	}
	if c.QSSubjectRank != nil {
		row.QSSubjectRank = fmt.Sprintf("%g", *c.QSSubjectRank)
	}
	if c.WeightedScore != nil {
		row.WeightedScore = fmt.Sprintf("%.1f", *c.WeightedScore)
	}
	if c.Admissions != nil && c.Admissions.TotalOfferPct != nil {
		row.OfferRate = fmt.Sprintf("%.1f", *c.Admissions.TotalOfferPct)
	}
	return row
}

func exportCSV(courses []dataset.Course) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{
		"id", "university", "course", "domain", "study_mode", "duration",
		"alevel_grades", "alevel_score", "ib_points", "qs_global_rank",
		"the_rank", "qs_subject_rank", "weighted_score", "offer_rate_pct",
		"course_url",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range courses {
		row := toExportRow(c)
		record := []string{
			row.ID,
			row.University,
			row.Course,
			row.Domain,
			row.StudyMode,
			row.Duration,
			row.ALevelGrades,
			row.ALevelScore,
			row.IBPoints,
			row.QSGlobalRank,
			row.THERank,
			row.QSSubjectRank,
			row.WeightedScore,
			row.OfferRate,
			row.CourseURL,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func exportJSON(courses []dataset.Course) error {
	rows := make([]ExportRow, len(courses))
	for i, c := range courses {
		rows[i] = toExportRow(c)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
