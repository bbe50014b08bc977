package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Every source spells institution names its own way ("UCL (University
// College London)", "The University of Edinburgh", curly apostrophes in
// "King’s College London"). The university name is the join key across all
// sources, so each spelling must resolve to one canonical form.
var universityAliases = map[string]string{
	// Course catalog spellings
	"King's College London, University of London":                            "King's College London",
	"London School of Economics and Political Science, University of London": "London School of Economics and Political Science",
	"The University of Edinburgh":                                            "University of Edinburgh",
	"UCL (University College London)":                                        "University College London",

	// Ranking provider spellings
	"UCL":                         "University College London",
	"King's College London (KCL)": "King's College London",
	"The London School of Economics and Political Science (LSE)": "London School of Economics and Political Science",
	"London School of Economics and Political Science (LSE)":     "London School of Economics and Political Science",
	"The University of Manchester":                               "University of Manchester",
	"The University of Warwick":                                  "University of Warwick",

	// Admissions statistics spellings
	"Cambridge": "University of Cambridge",
	"Oxford":    "University of Oxford",

	// Medical school sources
	"University of St Andrews (A100/ScotCOM)": "University of St Andrews",
	"City St George's University of London":   "St George's University of London",
	"Queen Mary, University of London":        "Queen Mary University of London",
	"University of Cardiff":                   "Cardiff University",
	"University of Keele":                     "Keele University",
	"University of Kent":                      "Kent and Medway Medical School",
	"University of Lancaster":                 "Lancaster University",
	"University of Newcastle":                 "Newcastle University",
}

// CanonicalUniversity resolves a source-specific university spelling to its
// canonical form. Unknown names pass through cleaned but unmapped.
func CanonicalUniversity(raw string) string {
	cleaned := cleanName(raw)
	if canonical, ok := universityAliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// cleanName applies Unicode normalization so that typographic variants of
// the same name compare equal: NFC composition, curly apostrophes to ASCII,
// collapsed whitespace.
func cleanName(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.ReplaceAll(s, "‘", "'")
	return strings.Join(strings.Fields(s), " ")
}

var titleCaser = cases.Title(language.BritishEnglish)

// TitleCourse normalizes a course title to title case. Both sides of the
// admissions-statistics join use this, making the "fuzzy" join a strict
// string-equality join on the normalized title.
func TitleCourse(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
