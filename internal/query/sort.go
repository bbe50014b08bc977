package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seetoh/coursefinder/internal/dataset"
)

// SortKey names a sortable column of the master record set.
type SortKey string

const (
	SortWeightedScore SortKey = "score"
	SortQSGlobal      SortKey = "qs"
	SortTHE           SortKey = "the"
	SortQSSubject     SortKey = "subject"
	SortALevel        SortKey = "alevel"
	SortCourseName    SortKey = "course"
	SortOfferRate     SortKey = "offer-rate"
)

// SortKeys lists the accepted sort keys for CLI validation.
var SortKeys = []SortKey{
	SortWeightedScore, SortQSGlobal, SortTHE, SortQSSubject,
	SortALevel, SortCourseName, SortOfferRate,
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (one of: %s)", s, joinKeys())
}

func joinKeys() string {
	names := make([]string, len(SortKeys))
	for i, k := range SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Sort orders records by the given key. The sort is stable and records
// with an absent sort value always come last, regardless of direction.
func Sort(records []dataset.Course, key SortKey, descending bool) []dataset.Course {
	out := make([]dataset.Course, len(records))
	copy(out, records)

	if key == SortCourseName {
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return out[i].Course > out[j].Course
			}
			return out[i].Course < out[j].Course
		})
		return out
	}

	value := numericKey(key)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := value(&out[i]), value(&out[j])
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false // absent sorts last
		case b == nil:
			return true
		case descending:
			return *a > *b
		default:
			return *a < *b
		}
	})
	return out
}

func numericKey(key SortKey) func(*dataset.Course) *float64 {
	switch key {
	case SortQSGlobal:
		return func(c *dataset.Course) *float64 { return c.QSGlobalRank }
	case SortTHE:
		return func(c *dataset.Course) *float64 { return c.THERank }
	case SortQSSubject:
		return func(c *dataset.Course) *float64 { return c.QSSubjectRank }
	case SortALevel:
		return func(c *dataset.Course) *float64 {
			if c.ALevelScore == nil {
				return nil
			}
			v := float64(*c.ALevelScore)
			return &v
		}
	case SortOfferRate:
		return func(c *dataset.Course) *float64 {
			if c.Admissions == nil {
				return nil
			}
			return c.Admissions.TotalOfferPct
		}
	default: // SortWeightedScore
		return func(c *dataset.Course) *float64 { return c.WeightedScore }
	}
}
