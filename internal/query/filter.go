package query

import (
	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/ranking"
)

// Filters collects every filter dimension of one request. Dimensions
// combine with logical AND; an empty dimension matches everything.
type Filters struct {
	Universities []string
	Domains      []string
	StudyModes   []string
	Durations    []string

	// Course-name keyword query, parsed per ParseKeywords.
	Search string

	// Grade thresholds test requirement <= what the user holds. Records
	// with an absent score always pass: absence means "unknown
	// requirement", and the policy is to not exclude the unknown.
	MaxALevel *int
	MaxIB     *int
}

// Apply returns the subset of records matching every active dimension.
func (f Filters) Apply(records []dataset.Course) []dataset.Course {
	includes, excludes := ParseKeywords(f.Search)

	unis := toSet(f.Universities)
	domains := toSet(f.Domains)
	modes := toSet(f.StudyModes)
	durations := toSet(f.Durations)

	var out []dataset.Course
	for _, r := range records {
		if !inSet(unis, r.University) ||
			!inSet(domains, r.Domain) ||
			!inSet(modes, r.StudyMode) ||
			!inSet(durations, r.Duration) {
			continue
		}
		if !MatchKeywords(r.Course, includes, excludes) {
			continue
		}
		if f.MaxALevel != nil && r.ALevelScore != nil && *r.ALevelScore > *f.MaxALevel {
			continue
		}
		if f.MaxIB != nil && r.IBScore != nil && *r.IBScore > *f.MaxIB {
			continue
		}
		out = append(out, r)
	}
	return out
}

// WithScores returns a copy of the records with WeightedScore computed for
// the given blend weight. The score is a pure function of the normalized
// columns and the weight; it is recomputed per request, never cached by
// record identity.
func WithScores(records []dataset.Course, globalWeight float64) []dataset.Course {
	out := make([]dataset.Course, len(records))
	for i, r := range records {
		r.WeightedScore = ranking.CompositeScore(r.QSGlobalNorm, r.THENorm, r.QSSubjectNorm, globalWeight)
		out[i] = r
	}
	return out
}

// MedFilters selects medical-school rows for the medical-schools view.
type MedFilters struct {
	Universities    []string
	TestCategories  []string
	SMCApprovedOnly bool
}

// Apply returns the medical schools matching every active dimension.
func (f MedFilters) Apply(rows []dataset.MedSchoolRow) []dataset.MedSchoolRow {
	unis := toSet(f.Universities)
	tests := toSet(f.TestCategories)

	var out []dataset.MedSchoolRow
	for _, m := range rows {
		if !inSet(unis, m.University) || !inSet(tests, m.TestCategory) {
			continue
		}
		if f.SMCApprovedOnly && !isApproved(m.SingaporeApproved) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func isApproved(v *string) bool {
	return v != nil && MatchKeywords(*v, []string{"yes"}, nil)
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// inSet treats a nil set as "dimension inactive": everything matches.
func inSet(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
