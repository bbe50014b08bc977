package query

import (
	"reflect"
	"testing"

	"github.com/seetoh/coursefinder/internal/dataset"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		query    string
		includes []string
		excludes []string
	}{
		{"comp, phys, -philo", []string{"comp", "phys"}, []string{"philo"}},
		{"comp phys -philo", []string{"comp", "phys"}, []string{"philo"}},
		{"computer science", []string{"computer", "science"}, nil},
		{"computer science,", []string{"computer science"}, nil}, // comma mode keeps phrases
		{"-", []string{"-"}, nil},                                // bare dash is not an exclude
		{"", nil, nil},
		{"   ", nil, nil},
		{" , , ", nil, nil},
		{"COMP, -PHILO", []string{"comp"}, []string{"philo"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			inc, exc := ParseKeywords(tt.query)
			if !reflect.DeepEqual(inc, tt.includes) {
				t.Errorf("includes = %v, want %v", inc, tt.includes)
			}
			if !reflect.DeepEqual(exc, tt.excludes) {
				t.Errorf("excludes = %v, want %v", exc, tt.excludes)
			}
		})
	}
}

func TestMatchKeywordsSemantics(t *testing.T) {
	titles := []string{"Computer Science BSc", "Philosophy BA", "Computing and Philosophy"}
	inc, exc := ParseKeywords("comp, phys, -philo")

	// AND across includes: every title lacks "phys", so nothing matches.
	for _, title := range titles {
		if MatchKeywords(title, inc, exc) {
			t.Errorf("%q should not match %v / %v", title, inc, exc)
		}
	}

	inc, exc = ParseKeywords("comp, -philo")
	var matched []string
	for _, title := range titles {
		if MatchKeywords(title, inc, exc) {
			matched = append(matched, title)
		}
	}
	// "Computing and Philosophy" contains "comp" but is knocked out by the
	// exclude; "Philosophy BA" lacks "comp" entirely.
	want := []string{"Computer Science BSc"}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("matched %v, want %v", matched, want)
	}
}

func TestMatchKeywordsEmptyQueryMatchesEverything(t *testing.T) {
	if !MatchKeywords("anything at all", nil, nil) {
		t.Error("empty query must match everything")
	}
}

func testRecords() []dataset.Course {
	return []dataset.Course{
		{University: "University of Oxford", Course: "Computer Science", Domain: "Computing & Technology",
			StudyMode: "Full-time", Duration: "3 years", ALevelScore: intp(17), IBScore: intp(39),
			QSGlobalNorm: fp(100), THENorm: fp(90), QSSubjectNorm: fp(80)},
		{University: "University of Cambridge", Course: "Philosophy", Domain: "Humanities",
			StudyMode: "Full-time", Duration: "3 years", ALevelScore: intp(16),
			QSGlobalNorm: fp(60)},
		{University: "Durham University", Course: "Business", Domain: "Business & Economics",
			StudyMode: "Part-time", Duration: "4 years"},
	}
}

func TestFiltersCategoricalAND(t *testing.T) {
	records := testRecords()

	out := Filters{Universities: []string{"University of Oxford"}}.Apply(records)
	if len(out) != 1 || out[0].Course != "Computer Science" {
		t.Fatalf("university filter: got %d records", len(out))
	}

	out = Filters{
		StudyModes: []string{"Full-time"},
		Domains:    []string{"Humanities"},
	}.Apply(records)
	if len(out) != 1 || out[0].Course != "Philosophy" {
		t.Fatalf("AND across dimensions: got %d records", len(out))
	}

	out = Filters{}.Apply(records)
	if len(out) != len(records) {
		t.Fatalf("empty filters must match everything, got %d", len(out))
	}
}

func TestFiltersGradeThresholdAbsentPasses(t *testing.T) {
	records := testRecords()

	out := Filters{MaxALevel: intp(16)}.Apply(records)
	// Oxford (17) is excluded; Cambridge (16) passes; Durham has no score
	// and always passes — unknown requirement is not grounds for exclusion.
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	for _, r := range out {
		if r.University == "University of Oxford" {
			t.Error("course requiring more than the user holds must be excluded")
		}
	}

	out = Filters{MaxIB: intp(36)}.Apply(records)
	if len(out) != 2 {
		t.Fatalf("IB threshold: got %d records, want 2", len(out))
	}
}

func TestWithScores(t *testing.T) {
	records := testRecords()
	scored := WithScores(records, 0.5)

	// Oxford: global mean (100+90)/2 = 95, subject 80 -> 87.5.
	if scored[0].WeightedScore == nil || *scored[0].WeightedScore != 87.5 {
		t.Errorf("score = %v, want 87.5", scored[0].WeightedScore)
	}
	// Cambridge: only a global component, weight is void.
	if scored[1].WeightedScore == nil || *scored[1].WeightedScore != 60 {
		t.Errorf("score = %v, want 60", scored[1].WeightedScore)
	}
	// Durham: no components at all.
	if scored[2].WeightedScore != nil {
		t.Errorf("score = %v, want absent", scored[2].WeightedScore)
	}

	// Source records stay untouched.
	if records[0].WeightedScore != nil {
		t.Error("WithScores must not mutate its input")
	}
}

func TestSortAbsentLast(t *testing.T) {
	records := WithScores(testRecords(), 0.5)

	desc := Sort(records, SortWeightedScore, true)
	if desc[0].University != "University of Oxford" {
		t.Errorf("descending: first = %s, want Oxford", desc[0].University)
	}
	if desc[len(desc)-1].University != "Durham University" {
		t.Error("absent score must sort last when descending")
	}

	asc := Sort(records, SortWeightedScore, false)
	if asc[0].University != "University of Cambridge" {
		t.Errorf("ascending: first = %s, want Cambridge", asc[0].University)
	}
	if asc[len(asc)-1].University != "Durham University" {
		t.Error("absent score must sort last when ascending too")
	}
}

func TestSortByCourseName(t *testing.T) {
	out := Sort(testRecords(), SortCourseName, false)
	want := []string{"Business", "Computer Science", "Philosophy"}
	for i, w := range want {
		if out[i].Course != w {
			t.Fatalf("position %d = %q, want %q", i, out[i].Course, w)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	if _, err := ParseSortKey("score"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseSortKey("bogus"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestGroupByDeterministicOrder(t *testing.T) {
	groups := GroupBy(testRecords(), GroupUniversity)
	want := []string{"Durham University", "University of Cambridge", "University of Oxford"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Key != w {
			t.Errorf("group %d = %q, want %q (alphabetical)", i, groups[i].Key, w)
		}
	}

	byDomain := GroupBy(testRecords(), GroupDomain)
	if len(byDomain) != 3 {
		t.Errorf("got %d domain groups, want 3", len(byDomain))
	}
}

func TestCollectOptions(t *testing.T) {
	opts := CollectOptions(testRecords())

	wantUnis := []string{"Durham University", "University of Cambridge", "University of Oxford"}
	if !reflect.DeepEqual(opts.Universities, wantUnis) {
		t.Errorf("universities = %v, want %v", opts.Universities, wantUnis)
	}
	if !reflect.DeepEqual(opts.StudyModes, []string{"Full-time", "Part-time"}) {
		t.Errorf("study modes = %v", opts.StudyModes)
	}
	if opts.ALevelScoreMin != 16 || opts.ALevelScoreMax != 17 {
		t.Errorf("alevel range = %d..%d, want 16..17", opts.ALevelScoreMin, opts.ALevelScoreMax)
	}
	if opts.IBScoreMin != 39 || opts.IBScoreMax != 39 {
		t.Errorf("ib range = %d..%d, want 39..39", opts.IBScoreMin, opts.IBScoreMax)
	}
}

func TestMedFilters(t *testing.T) {
	rows := []dataset.MedSchoolRow{
		{University: "Cardiff University", TestCategory: "UCAT", SingaporeApproved: strp("Yes")},
		{University: "Keele University", TestCategory: "Other", SingaporeApproved: strp("No")},
		{University: "Lancaster University", TestCategory: "UCAT"},
	}

	out := MedFilters{TestCategories: []string{"UCAT"}}.Apply(rows)
	if len(out) != 2 {
		t.Fatalf("test filter: got %d rows, want 2", len(out))
	}

	out = MedFilters{SMCApprovedOnly: true}.Apply(rows)
	if len(out) != 1 || out[0].University != "Cardiff University" {
		t.Fatalf("SMC filter: got %d rows", len(out))
	}
}

func intp(v int) *int       { return &v }
func fp(v float64) *float64 { return &v }
func strp(v string) *string { return &v }
