package query

import (
	"sort"

	"github.com/seetoh/coursefinder/internal/dataset"
)

// Options enumerates the distinct values present in the master record set,
// for populating filter controls.
type Options struct {
	Universities []string `json:"universities"`
	Domains      []string `json:"domains"`
	StudyModes   []string `json:"study_modes"`
	Durations    []string `json:"durations"`

	ALevelScoreMin int `json:"alevel_score_min"`
	ALevelScoreMax int `json:"alevel_score_max"`
	IBScoreMin     int `json:"ib_score_min"`
	IBScoreMax     int `json:"ib_score_max"`
}

// CollectOptions scans the record set for the distinct categorical values
// and observed grade-score ranges. Score ranges fall back to the full
// scale when no record carries a score.
func CollectOptions(records []dataset.Course) Options {
	unis := map[string]struct{}{}
	domains := map[string]struct{}{}
	modes := map[string]struct{}{}
	durations := map[string]struct{}{}

	opts := Options{
		ALevelScoreMin: 0, ALevelScoreMax: 18,
		IBScoreMin: 24, IBScoreMax: 45,
	}

	alevelSeen, ibSeen := false, false
	for _, r := range records {
		if r.University != "" {
			unis[r.University] = struct{}{}
		}
		if r.Domain != "" {
			domains[r.Domain] = struct{}{}
		}
		if r.StudyMode != "" {
			modes[r.StudyMode] = struct{}{}
		}
		if r.Duration != "" {
			durations[r.Duration] = struct{}{}
		}
		if r.ALevelScore != nil {
			if !alevelSeen {
				opts.ALevelScoreMin, opts.ALevelScoreMax = *r.ALevelScore, *r.ALevelScore
				alevelSeen = true
			} else {
				opts.ALevelScoreMin = min(opts.ALevelScoreMin, *r.ALevelScore)
				opts.ALevelScoreMax = max(opts.ALevelScoreMax, *r.ALevelScore)
			}
		}
		if r.IBScore != nil {
			if !ibSeen {
				opts.IBScoreMin, opts.IBScoreMax = *r.IBScore, *r.IBScore
				ibSeen = true
			} else {
				opts.IBScoreMin = min(opts.IBScoreMin, *r.IBScore)
				opts.IBScoreMax = max(opts.IBScoreMax, *r.IBScore)
			}
		}
	}

	opts.Universities = sortedKeys(unis)
	opts.Domains = sortedKeys(domains)
	opts.StudyModes = sortedKeys(modes)
	opts.Durations = sortedKeys(durations)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
