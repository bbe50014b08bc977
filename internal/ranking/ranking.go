// Package ranking converts raw ranking positions into a common 0-100
// "higher is better" scale and blends global and subject ranks into one
// weighted composite score.
package ranking

import (
	"strconv"
	"strings"
)

// ParseRank parses a raw rank string from a ranking provider. Providers
// report ties as "=5", open-ended bands as "1001+", and ranges as
// "101-150"; ranges resolve to their midpoint. Unparseable input is nil.
func ParseRank(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "=", "")
	s = strings.ReplaceAll(s, "+", "")

	if i := strings.Index(s, "-"); i > 0 {
		lo, err1 := strconv.Atoi(strings.TrimSpace(s[:i]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err1 != nil || err2 != nil {
			return nil
		}
		mid := (float64(lo) + float64(hi)) / 2
		return &mid
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// NormalizeColumn rescales one ranking column to 0-100 where rank 1 maps to
// 100 and the worst observed rank maps to 0. The scale depends on the
// maximum rank present in the column, so normalization is a whole-column
// operation. Nil entries stay nil. Degenerate columns normalize to all-nil:
// no values at all, a single distinct value (nothing to spread across the
// scale), or a maximum rank <= 1.
func NormalizeColumn(col []*float64) []*float64 {
	out := make([]*float64, len(col))

	var minRank, maxRank float64
	found := false
	for _, r := range col {
		if r == nil {
			continue
		}
		if !found {
			minRank, maxRank = *r, *r
			found = true
			continue
		}
		if *r < minRank {
			minRank = *r
		}
		if *r > maxRank {
			maxRank = *r
		}
	}
	if !found || maxRank <= 1 || minRank == maxRank {
		return out
	}

	for i, r := range col {
		if r == nil {
			continue
		}
		v := 100 * (1 - (*r-1)/(maxRank-1))
		out[i] = &v
	}
	return out
}

// CompositeScore blends the normalized global and subject ranks into one
// 0-100 score. The global component is the mean of whichever of the two
// global norms are present. When only one side exists the weight is void
// and that side is returned as-is; when neither exists the score is nil.
// globalWeight is in [0,1]; the subject weight is its complement.
func CompositeScore(qsGlobalNorm, theNorm, subjectNorm *float64, globalWeight float64) *float64 {
	global := meanPresent(qsGlobalNorm, theNorm)

	switch {
	case global != nil && subjectNorm != nil:
		score := globalWeight**global + (1-globalWeight)**subjectNorm
		return &score
	case global != nil:
		return global
	case subjectNorm != nil:
		v := *subjectNorm
		return &v
	default:
		return nil
	}
}

// BestGlobalRank is the minimum of the present global ranks, favouring
// whichever provider places the institution higher. Nil if both absent.
func BestGlobalRank(qsRank, theRank *float64) *float64 {
	switch {
	case qsRank != nil && theRank != nil:
		best := *qsRank
		if *theRank < best {
			best = *theRank
		}
		return &best
	case qsRank != nil:
		v := *qsRank
		return &v
	case theRank != nil:
		v := *theRank
		return &v
	default:
		return nil
	}
}

func meanPresent(values ...*float64) *float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}
