package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTableMissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "courses.csv", "university,course\nOxford,Maths\n")

	_, err := readTable(path, "courses", "university", "course", "alevel_grades")
	if err == nil {
		t.Fatal("expected error for missing required column")
	}
	if !strings.Contains(err.Error(), "courses") || !strings.Contains(err.Error(), "alevel_grades") {
		t.Errorf("error should name the table and the missing field, got: %v", err)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := readTable(filepath.Join(t.TempDir(), "nope.csv"), "courses", "university")
	if err == nil {
		t.Fatal("expected error for unreadable source")
	}
	if !strings.Contains(err.Error(), "courses") {
		t.Errorf("error should name the source table, got: %v", err)
	}
}

func TestLoadCoursesStripsBOMAndCanonicalizes(t *testing.T) {
	path := writeCSV(t, "courses.csv",
		"\uFEFFuniversity,course,ucas_code,study_mode,duration,alevel_grades,ib_points_raw,course_url\n"+
			"UCL (University College London),computer science,G400,Full-time,3 years,A*A*A,39 Points,https://example.org\n"+
			"The University of Edinburgh,Philosophy,V500,Full-time,4 years,AAB,36 Points,\n")

	rows, err := loadCourses(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].University != "University College London" {
		t.Errorf("university = %q, want canonical name", rows[0].University)
	}
	if rows[0].Course != "Computer Science" {
		t.Errorf("course = %q, want title-cased", rows[0].Course)
	}
	if rows[1].University != "University of Edinburgh" {
		t.Errorf("university = %q, want University of Edinburgh", rows[1].University)
	}
}

func TestLoadGlobalRankingsParsesRankNotation(t *testing.T) {
	path := writeCSV(t, "rankings_global.csv",
		"university,qs_global_rank,qs_global_score,the_rank,the_score\n"+
			"University of Oxford,=4,97.2,1,98.5\n"+
			"Durham University,101-150,,160,55.1\n"+
			"University of Exeter,,,,\n")

	rows, err := loadGlobalRankings(path)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].QSRank == nil || *rows[0].QSRank != 4 {
		t.Errorf("tied rank '=4' = %v, want 4", rows[0].QSRank)
	}
	if rows[1].QSRank == nil || *rows[1].QSRank != 125.5 {
		t.Errorf("range rank '101-150' = %v, want midpoint 125.5", rows[1].QSRank)
	}
	if rows[2].QSRank != nil || rows[2].THERank != nil {
		t.Error("blank ranks must load as absent")
	}
}

func TestLoadAdmissionsCoercesPercentsAndSkipsSummaryRows(t *testing.T) {
	path := writeCSV(t, "oxbridge_admissions.csv",
		"university,course,total_applicants,total_offers,total_offer_pct,uk_offer_pct,intl_offer_pct\n"+
			"Oxford,All,9000,1200,13.3%,15%,5%\n"+
			"Oxford,Computer Science,500,40,8.0%,10.5%,3.2%\n")

	rows, err := loadAdmissions(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 ('All' summary rows are dropped)", len(rows))
	}
	r := rows[0]
	if r.University != "University of Oxford" {
		t.Errorf("university = %q, want University of Oxford", r.University)
	}
	if r.Stats.TotalOfferPct == nil || *r.Stats.TotalOfferPct != 8.0 {
		t.Errorf("total offer pct = %v, want 8.0", r.Stats.TotalOfferPct)
	}
	if r.Stats.IntlOfferPct == nil || *r.Stats.IntlOfferPct != 3.2 {
		t.Errorf("intl offer pct = %v, want 3.2", r.Stats.IntlOfferPct)
	}
}

func TestLoadMedSchoolsCategorizesTests(t *testing.T) {
	path := writeCSV(t, "med_schools.csv",
		"university,med_course,med_admission_test,med_intl_applicants,med_intl_offer_pct\n"+
			"University of Cardiff,Medicine MBChB,UCAT required,340,4.5%\n"+
			"Lancaster University,Medicine MBChB,Interview-focused selection,,\n"+
			"Keele University,Medicine MBChB,,,\n")

	rows, err := LoadMedSchools(path)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].University != "Cardiff University" {
		t.Errorf("university = %q, want Cardiff University", rows[0].University)
	}
	if rows[0].TestCategory != "UCAT" {
		t.Errorf("test category = %q, want UCAT", rows[0].TestCategory)
	}
	if rows[1].TestCategory != "Other" {
		t.Errorf("test category = %q, want Other", rows[1].TestCategory)
	}
	if rows[2].TestCategory != "Unknown" {
		t.Errorf("test category = %q, want Unknown", rows[2].TestCategory)
	}
	if rows[0].IntlOfferPct == nil || *rows[0].IntlOfferPct != 4.5 {
		t.Errorf("intl offer pct = %v, want 4.5", rows[0].IntlOfferPct)
	}
}

func TestCanonicalUniversityNormalizesApostrophes(t *testing.T) {
	// THE spells King's with a right single quotation mark.
	got := CanonicalUniversity("King’s College London")
	if got != "King's College London" {
		t.Errorf("got %q, want ASCII-apostrophe canonical name", got)
	}
}

func TestCanonicalUniversityUnknownPassesThrough(t *testing.T) {
	got := CanonicalUniversity("  University   of Nowhere ")
	if got != "University of Nowhere" {
		t.Errorf("got %q, want cleaned pass-through", got)
	}
}
