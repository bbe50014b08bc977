package query

import (
	"fmt"
	"sort"

	"github.com/seetoh/coursefinder/internal/dataset"
)

// GroupKey names a categorical grouping column.
type GroupKey string

const (
	GroupNone       GroupKey = "none"
	GroupUniversity GroupKey = "university"
	GroupDomain     GroupKey = "domain"
)

// ParseGroupKey validates a user-supplied group key.
func ParseGroupKey(s string) (GroupKey, error) {
	switch GroupKey(s) {
	case GroupNone, GroupUniversity, GroupDomain:
		return GroupKey(s), nil
	}
	return "", fmt.Errorf("unknown group key %q (one of: none, university, domain)", s)
}

// Group is one partition of a grouped record set.
type Group struct {
	Key     string
	Records []dataset.Course
}

// GroupBy partitions records by the given key, preserving record order
// within each group. Groups come back in alphabetical key order, so output
// is deterministic.
func GroupBy(records []dataset.Course, key GroupKey) []Group {
	keyOf := func(c *dataset.Course) string { return c.University }
	if key == GroupDomain {
		keyOf = func(c *dataset.Course) string { return c.Domain }
	}

	byKey := map[string][]dataset.Course{}
	for _, r := range records {
		k := keyOf(&r)
		byKey[k] = append(byKey[k], r)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Records: byKey[k]})
	}
	return groups
}
