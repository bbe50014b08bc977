package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/grades"
	"github.com/seetoh/coursefinder/internal/output"
	"github.com/seetoh/coursefinder/internal/query"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List and filter courses",
	Long: `List undergraduate courses with optional filters.

Search terms split on commas when present, otherwise on whitespace.
Prefix a term with "-" to exclude it.

Examples:
  coursefinder courses --domain="Computing & Technology"
  coursefinder courses --search="comp, -philosophy"
  coursefinder courses --alevel=15 --sort=score --desc
  coursefinder courses --group=university -o json`,
	RunE: runCourses,
}

var (
	coursesUniversity []string
	coursesDomain     []string
	coursesMode       []string
	coursesDuration   []string
	coursesSearch     string
	coursesALevel     string
	coursesIB         int
	coursesWeight     float64
	coursesSort       string
	coursesDesc       bool
	coursesGroup      string
	coursesLimit      int
)

func init() {
	rootCmd.AddCommand(coursesCmd)

	coursesCmd.Flags().StringSliceVar(&coursesUniversity, "university", nil, "Filter by university (repeatable)")
	coursesCmd.Flags().StringSliceVar(&coursesDomain, "domain", nil, "Filter by subject domain (repeatable)")
	coursesCmd.Flags().StringSliceVar(&coursesMode, "mode", nil, "Filter by study mode (repeatable)")
	coursesCmd.Flags().StringSliceVar(&coursesDuration, "duration", nil, "Filter by duration (repeatable)")
	coursesCmd.Flags().StringVar(&coursesSearch, "search", "", "Course name keywords (prefix with - to exclude)")
	coursesCmd.Flags().StringVar(&coursesALevel, "alevel", "", "Your A-level grades (e.g. AAB) or tally score; hides offers above it")
	coursesCmd.Flags().IntVar(&coursesIB, "ib", -1, "Your IB points; hides offers above them")
	coursesCmd.Flags().Float64Var(&coursesWeight, "weight", -1, "Global vs subject rank weight, 0-1 (default from config)")
	coursesCmd.Flags().StringVar(&coursesSort, "sort", "score", "Sort key (score, qs, the, subject, alevel, course, offer-rate)")
	coursesCmd.Flags().BoolVar(&coursesDesc, "desc", false, "Sort descending")
	coursesCmd.Flags().StringVar(&coursesGroup, "group", "none", "Group results (none, university, domain)")
	coursesCmd.Flags().IntVar(&coursesLimit, "limit", 0, "Maximum number of results")
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	filters := query.Filters{
		Universities: coursesUniversity,
		Domains:      coursesDomain,
		StudyModes:   coursesMode,
		Durations:    coursesDuration,
		Search:       coursesSearch,
	}
	if coursesALevel != "" {
		if n, err := strconv.Atoi(coursesALevel); err == nil {
			filters.MaxALevel = &n
		} else if score := grades.ParseUserGrades(coursesALevel); score != nil {
			filters.MaxALevel = score
		} else {
			return fmt.Errorf("cannot parse A-level grades %q", coursesALevel)
		}
	}
	if coursesIB >= 0 {
		filters.MaxIB = &coursesIB
	}

	weight := cfg.Scoring.GlobalWeight
	if coursesWeight >= 0 {
		if coursesWeight > 1 {
			return fmt.Errorf("weight must be between 0 and 1, got %g", coursesWeight)
		}
		weight = coursesWeight
	}

	sortKey, err := query.ParseSortKey(coursesSort)
	if err != nil {
		return err
	}
	groupKey, err := query.ParseGroupKey(coursesGroup)
	if err != nil {
		return err
	}

	results := filters.Apply(records)
	results = query.WithScores(results, weight)
	results = query.Sort(results, sortKey, coursesDesc)

	if coursesLimit > 0 && len(results) > coursesLimit {
		results = results[:coursesLimit]
	}

	if groupKey != query.GroupNone {
		return output.Output(outputFmt, query.GroupBy(results, groupKey))
	}
	return output.Output(outputFmt, results)
}
