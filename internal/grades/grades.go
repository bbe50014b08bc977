// Package grades parses free-text A-Level and IB entry requirements into
// numeric scores usable for filtering and comparison.
//
// A-Level strings look like "A*A*A", "AAB", "ABB-BBB" or "Not accepted".
// IB strings look like "36 Points", "39", "36 Points (666)", "38-40 points".
//
// The A-Level score is the sum of per-grade values (A*=6, A=5, B=4, C=3,
// D=2, E=1), so A*A*A = 17, AAA = 15, AAB = 14 and so on. This is a raw
// ordinal tally, not a UCAS tariff conversion: it is only meaningful for
// relative comparison between courses.
package grades

import (
	"regexp"
	"strconv"
	"strings"
)

// Per-grade values for the A-Level tally.
var gradeValues = map[string]int{
	"A*": 6,
	"A":  5,
	"B":  4,
	"C":  3,
	"D":  2,
	"E":  1,
}

var (
	gradeToken = regexp.MustCompile(`A\*|[A-E]`)
	digitRun   = regexp.MustCompile(`\d+`)
)

// IB totals outside this window are treated as malformed source data.
// The real IB scale is 24-45; the floor is extended to 20 for tolerance.
const (
	ibMin = 20
	ibMax = 45
)

// ParseALevel converts an A-Level requirement string into a numeric score.
// Range requirements like "ABB-BBB" keep the segment before the hyphen (the
// higher end). Empty, "nan" and "Not accepted" inputs, and strings with no
// grade tokens, return nil: absence means "no requirement data", never zero.
func ParseALevel(s string) *int {
	s = strings.TrimSpace(s)
	if isNoValue(s) {
		return nil
	}

	// "AAB-ABB" or "ABB - BBB": keep the higher end, but only when the left
	// segment actually holds grade letters (not a stray negative number).
	if i := strings.Index(s, "-"); i > 0 {
		left := s[:i]
		if strings.ContainsAny(left, "ABCDE*") {
			s = strings.TrimSpace(left)
		}
	}

	total := 0
	matched := false
	for _, tok := range gradeToken.FindAllString(s, -1) {
		total += gradeValues[tok]
		matched = true
	}
	if !matched || total == 0 {
		return nil
	}
	return &total
}

// ParseIB converts an IB points requirement string into a numeric value.
// The first run of digits is taken, so "38-40 points" yields 38 — the lower
// bound is the minimum qualifying score. Note the deliberate asymmetry with
// ParseALevel, which keeps the higher end of a range. Values outside the
// sanity window return nil.
func ParseIB(s string) *int {
	s = strings.TrimSpace(s)
	if isNoValue(s) {
		return nil
	}

	m := digitRun.FindString(s)
	if m == "" {
		return nil
	}
	val, err := strconv.Atoi(m)
	if err != nil || val < ibMin || val > ibMax {
		return nil
	}
	return &val
}

// ParseUserGrades parses grades the user claims to hold, for the
// "courses I qualify for" filter. Same rules as ParseALevel.
func ParseUserGrades(s string) *int {
	return ParseALevel(s)
}

func isNoValue(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "not accepted":
		return true
	}
	return false
}

// DisplayGrade converts a numeric score back to an approximate grade string.
func DisplayGrade(score int) string {
	switch {
	case score >= 18:
		return "A*A*A*"
	case score >= 17:
		return "A*A*A"
	case score >= 16:
		return "A*AA"
	case score >= 15:
		return "AAA"
	case score >= 14:
		return "AAB"
	case score >= 13:
		return "ABB"
	case score >= 12:
		return "BBB"
	case score >= 11:
		return "BBC"
	case score >= 10:
		return "BCC"
	case score >= 9:
		return "CCC"
	default:
		return "(" + strconv.Itoa(score) + ")"
	}
}

// GradeOption is a labelled grade threshold for filter controls.
type GradeOption struct {
	Label string
	Score int
}

// ALevelOptions lists selectable A-Level thresholds, highest first.
var ALevelOptions = []GradeOption{
	{"A*A*A* (18)", 18},
	{"A*A*A (17)", 17},
	{"A*AA (16)", 16},
	{"AAA (15)", 15},
	{"AAB (14)", 14},
	{"ABB (13)", 13},
	{"BBB (12)", 12},
	{"BBC (11)", 11},
	{"BCC (10)", 10},
	{"CCC (9)", 9},
}

// IBPointsOptions lists selectable IB totals, 45 down to 24.
func IBPointsOptions() []int {
	opts := make([]int, 0, 45-24+1)
	for p := 45; p >= 24; p-- {
		opts = append(opts, p)
	}
	return opts
}
