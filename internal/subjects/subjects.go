// Package subjects classifies free-text course titles into QS subject
// categories and coarser domain groupings via ordered keyword rules.
//
// Rule order is significant: more specific rules sit before generic ones
// ("chemical engineering" before "engineering"), and broad catch-alls like
// "Natural Sciences" come last. Classification correctness depends on the
// table order as much as the keywords themselves.
package subjects

import "strings"

// Rule pairs a QS subject label with the keywords that select it.
// Keywords match as substrings of the lower-cased course title.
type Rule struct {
	Subject  string
	Keywords []string
}

// Rules is the ordered classification table. Most specific first.
var Rules = []Rule{
	// Engineering specialties (before general engineering)
	{"Engineering - Chemical", []string{"chemical engineering"}},
	{"Engineering - Civil", []string{"civil engineering"}},
	{"Engineering - Electrical", []string{"electrical engineering", "electronic engineering", "electronics"}},
	{"Engineering - Mechanical", []string{"mechanical engineering"}},
	{"Engineering - Mineral", []string{"mining engineering", "mineral engineering"}},
	{"Petroleum Engineering", []string{"petroleum engineering"}},

	// Medicine and health (before general science)
	{"Medicine", []string{"medicine", "medical sciences", "mbbs", "mbchb", "clinical",
		"radiography", "diagnostic imaging"}},
	{"Dentistry", []string{"dentistry", "dental"}},
	{"Nursing", []string{"nursing", "midwifery", "audiology", "speech therapy",
		"occupational therapy", "physiotherapy"}},
	{"Pharmacy", []string{"pharmacy", "pharmacology", "pharmaceutical"}},
	{"Veterinary Science", []string{"veterinary"}},
	{"Anatomy", []string{"anatomy", "physiology"}},
	{"Psychology", []string{"psychology"}},

	// Sciences
	{"Chemistry", []string{"chemistry", "chemical"}},
	{"Physics", []string{"physics", "astrophysics", "theoretical physics"}},
	{"Biological", []string{"biology", "biological", "biochemistry", "biomedical", "bioscience",
		"genetics", "microbiology", "neuroscience", "zoology", "ecology",
		"molecular biology", "cell biology", "biotechnology", "animal",
		"plant science"}},
	{"Mathematics", []string{"mathematics", "maths", "mathematical"}},
	{"Statistics", []string{"statistics", "statistical", "actuarial"}},
	{"Computer Science", []string{"computer science", "computing", "software engineering",
		"artificial intelligence", "data science", "informatics",
		"cyber security", "cybersecurity"}},
	{"Data Science", []string{"data science", "data analytics"}},
	{"Materials Science", []string{"materials science", "materials engineering"}},
	{"Environmental Sciences", []string{"environmental science", "environmental studies",
		"sustainability", "climate"}},
	{"Earth & Marine Sciences", []string{"earth science", "marine", "ocean"}},
	{"Geology", []string{"geology", "geological"}},
	{"Geophysics", []string{"geophysics"}},

	// Engineering general (after specialties)
	{"Engineering & Technology", []string{"engineering", "mechatronics", "robotics",
		"aerospace", "automotive", "bioengineering"}},

	// Business
	{"Accounting", []string{"accounting"}},
	{"Business", []string{"business", "management", "commerce", "enterprise",
		"finance", "banking", "investment"}},
	{"Marketing", []string{"marketing"}},
	{"Economics & Econometrics", []string{"economics", "econometrics"}},

	// Social sciences
	{"Law", []string{"law", "legal"}},
	{"Politics", []string{"politics", "political", "international relations", "government",
		"public policy", "public administration"}},
	{"Sociology", []string{"sociology", "social science", "childhood studies"}},
	{"Anthropology", []string{"anthropology"}},
	{"Education", []string{"education", "teaching"}},
	{"Development Studies", []string{"development studies", "international development"}},
	{"Social Policy", []string{"social policy", "social work", "criminology"}},
	{"Communication", []string{"journalism", "media", "communication", "film"}},
	{"Geography", []string{"geography", "geographic"}},
	{"Area Studies", []string{"middle east", "middle eastern", "area studies"}},
	{"Hospitality", []string{"hospitality", "tourism"}},
	{"Sports-related Subjects", []string{"sport", "exercise science", "kinesiology"}},

	// Humanities
	{"History$", []string{"history"}},
	{"History of Art", []string{"history of art", "art history"}},
	{"Archaeology", []string{"archaeology", "archaeological"}},
	{"Classics", []string{"classics", "classical", "latin", "greek", "ancient", "assyriology",
		"egyptology"}},
	{"Philosophy", []string{"philosophy"}},
	{"Theology", []string{"theology", "religious studies", "divinity", "religion"}},
	{"English Language", []string{"english", "creative writing", "literature"}},
	{"Modern Languages", []string{"french", "german", "spanish", "italian", "portuguese",
		"russian", "japanese", "chinese", "mandarin", "arabic",
		"language", "linguistics", "celtic", "gaelic", "persian",
		"korean", "slavonic", "czech", "polish", "hebrew",
		"scandinavian", "dutch", "catalan", "romanian",
		"bulgarian", "danish", "finnish", "hungarian",
		"norwegian", "serbian", "croatian", "swedish",
		"ukrainian", "yiddish", "turkish", "thai",
		"swahili", "sanskrit"}},
	{"Linguistics", []string{"linguistics", "phonetics"}},
	{"Music", []string{"music"}},
	{"Performing Arts", []string{"drama", "theatre", "dance", "performing arts"}},
	{"Art & Design", []string{"art", "design", "fine art", "fashion", "textile", "animation",
		"creative", "visual"}},
	{"Architecture", []string{"architecture"}},

	// Natural Sciences (broad catch-all, last)
	{"Natural Sciences", []string{"natural sciences", "science"}},
}

// Classify returns every subject whose keywords match the course title,
// in table order. One keyword hit per rule is enough; a rule never matches
// the same course twice.
func Classify(title string) []string {
	lower := strings.ToLower(title)
	var matches []string
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, rule.Subject)
				break
			}
		}
	}
	return matches
}

// Primary returns the first matching subject, if any.
func Primary(title string) (string, bool) {
	matches := Classify(title)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Domain returns the broad domain for the course title. Never empty:
// unclassified titles and unmapped subjects fall back to DomainOther.
func Domain(title string) string {
	primary, ok := Primary(title)
	if !ok {
		return DomainOther
	}
	if d, ok := subjectToDomain[primary]; ok {
		return d
	}
	return DomainOther
}
