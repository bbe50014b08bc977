package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seetoh/coursefinder/internal/ranking"
)

// table is a header-indexed view over one CSV extract. Sparse cells are
// normal; a missing required column or an unreadable file is a hard error,
// since that means a broken source file rather than ordinary sparse data.
type table struct {
	name string
	cols map[string]int
	rows [][]string
}

func readTable(path, name string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source table %q: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source table %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source table %q: no header row", name)
	}

	header := records[0]
	// The extracts are written UTF-8 with BOM; strip it from the first cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	t := &table{name: name, cols: make(map[string]int, len(header)), rows: records[1:]}
	for i, col := range header {
		t.cols[strings.TrimSpace(col)] = i
	}

	for _, col := range required {
		if _, ok := t.cols[col]; !ok {
			return nil, fmt.Errorf("source table %q: missing required column %q", name, col)
		}
	}
	return t, nil
}

// cell returns the trimmed value at (row, col), or "" when the column is
// absent or the cell is empty.
func (t *table) cell(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

func (t *table) strPtr(row []string, col string) *string {
	v := t.cell(row, col)
	if v == "" {
		return nil
	}
	return &v
}

func (t *table) intPtr(row []string, col string) *int {
	v := t.cell(row, col)
	if v == "" {
		return nil
	}
	// Counts sometimes arrive float-formatted ("34.0").
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func (t *table) floatPtr(row []string, col string) *float64 {
	v := t.cell(row, col)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// pctPtr coerces string-encoded percentages ("12.3%") to their numeric value.
func (t *table) pctPtr(row []string, col string) *float64 {
	v := strings.TrimSpace(strings.TrimSuffix(t.cell(row, col), "%"))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// rankPtr parses provider rank notation ("=5", "101-150", "1001+").
func (t *table) rankPtr(row []string, col string) *float64 {
	return ranking.ParseRank(t.cell(row, col))
}

// SourcePaths locates the five CSV extracts the loader consumes.
type SourcePaths struct {
	Courses    string
	Global     string
	Subject    string
	MedSchools string
	Admissions string
}

// LoadSources reads all five extracts from disk. Join misses and blank
// cells are expected; only structural malformation fails.
func LoadSources(paths SourcePaths) (*Sources, error) {
	src := &Sources{}
	var err error

	if src.Courses, err = loadCourses(paths.Courses); err != nil {
		return nil, err
	}
	if src.Global, err = loadGlobalRankings(paths.Global); err != nil {
		return nil, err
	}
	if src.Subject, err = loadSubjectRankings(paths.Subject); err != nil {
		return nil, err
	}
	if src.MedSchools, err = LoadMedSchools(paths.MedSchools); err != nil {
		return nil, err
	}
	if src.Admissions, err = loadAdmissions(paths.Admissions); err != nil {
		return nil, err
	}
	return src, nil
}

func loadCourses(path string) ([]CourseRow, error) {
	t, err := readTable(path, "courses",
		"university", "course", "alevel_grades", "ib_points_raw",
		"study_mode", "duration", "course_url")
	if err != nil {
		return nil, err
	}

	rows := make([]CourseRow, 0, len(t.rows))
	for _, row := range t.rows {
		uni := t.cell(row, "university")
		title := t.cell(row, "course")
		if uni == "" || title == "" {
			continue
		}
		rows = append(rows, CourseRow{
			University:   CanonicalUniversity(uni),
			Course:       TitleCourse(title),
			UCASCode:     t.cell(row, "ucas_code"),
			StudyMode:    t.cell(row, "study_mode"),
			Duration:     t.cell(row, "duration"),
			ALevelGrades: t.cell(row, "alevel_grades"),
			IBPointsRaw:  t.cell(row, "ib_points_raw"),
			CourseURL:    t.cell(row, "course_url"),
		})
	}
	return rows, nil
}

func loadGlobalRankings(path string) ([]GlobalRankingRow, error) {
	t, err := readTable(path, "rankings_global",
		"university", "qs_global_rank", "the_rank")
	if err != nil {
		return nil, err
	}

	rows := make([]GlobalRankingRow, 0, len(t.rows))
	for _, row := range t.rows {
		uni := t.cell(row, "university")
		if uni == "" {
			continue
		}
		rows = append(rows, GlobalRankingRow{
			University: CanonicalUniversity(uni),
			QSRank:     t.rankPtr(row, "qs_global_rank"),
			QSScore:    t.floatPtr(row, "qs_global_score"),
			THERank:    t.rankPtr(row, "the_rank"),
			THEScore:   t.floatPtr(row, "the_score"),
		})
	}
	return rows, nil
}

func loadSubjectRankings(path string) ([]SubjectRankingRow, error) {
	t, err := readTable(path, "rankings_subject",
		"university", "subject", "qs_subject_rank")
	if err != nil {
		return nil, err
	}

	rows := make([]SubjectRankingRow, 0, len(t.rows))
	for _, row := range t.rows {
		uni := t.cell(row, "university")
		subject := t.cell(row, "subject")
		if uni == "" || subject == "" {
			continue
		}
		rows = append(rows, SubjectRankingRow{
			University: CanonicalUniversity(uni),
			Subject:    subject,
			Rank:       t.rankPtr(row, "qs_subject_rank"),
			Score:      t.floatPtr(row, "qs_subject_score"),
		})
	}
	return rows, nil
}

// LoadMedSchools reads the medical-school extract. It is exported because
// the medical-schools view also consumes it independently of the merge.
func LoadMedSchools(path string) ([]MedSchoolRow, error) {
	t, err := readTable(path, "med_schools", "university")
	if err != nil {
		return nil, err
	}

	rows := make([]MedSchoolRow, 0, len(t.rows))
	for _, row := range t.rows {
		uni := t.cell(row, "university")
		if uni == "" {
			continue
		}
		m := MedSchoolRow{
			University:        CanonicalUniversity(uni),
			Course:            t.strPtr(row, "med_course"),
			ALevelReq:         t.strPtr(row, "med_alevel_req"),
			IBReq:             t.strPtr(row, "med_ib_req"),
			GCSEReq:           t.strPtr(row, "med_gcse_req"),
			AdmissionTest:     t.strPtr(row, "med_admission_test"),
			InterviewType:     t.strPtr(row, "med_interview_type"),
			TeachingStyle:     t.strPtr(row, "med_teaching_style"),
			WorkExperience:    t.strPtr(row, "med_work_experience"),
			SingaporeApproved: t.strPtr(row, "med_singapore_approved"),
			IntlApplicants:    t.intPtr(row, "med_intl_applicants"),
			IntlOffers:        t.intPtr(row, "med_intl_offers"),
			IntlOfferPct:      t.pctPtr(row, "med_intl_offer_pct"),
		}
		m.TestCategory = CategorizeAdmissionTest(m.AdmissionTest)
		rows = append(rows, m)
	}
	return rows, nil
}

func loadAdmissions(path string) ([]AdmissionsRow, error) {
	t, err := readTable(path, "oxbridge_admissions", "university", "course")
	if err != nil {
		return nil, err
	}

	rows := make([]AdmissionsRow, 0, len(t.rows))
	for _, row := range t.rows {
		uni := t.cell(row, "university")
		course := t.cell(row, "course")
		// "All" rows are per-university summaries, not courses.
		if uni == "" || course == "" || course == "All" {
			continue
		}
		rows = append(rows, AdmissionsRow{
			University: CanonicalUniversity(uni),
			Course:     TitleCourse(course),
			Stats: AdmissionsInfo{
				TotalApplicants: t.intPtr(row, "total_applicants"),
				UKApplicants:    t.intPtr(row, "uk_applicants"),
				IntlApplicants:  t.intPtr(row, "intl_applicants"),
				TotalOffers:     t.intPtr(row, "total_offers"),
				UKOffers:        t.intPtr(row, "uk_offers"),
				IntlOffers:      t.intPtr(row, "intl_offers"),
				TotalOfferPct:   t.pctPtr(row, "total_offer_pct"),
				UKOfferPct:      t.pctPtr(row, "uk_offer_pct"),
				IntlOfferPct:    t.pctPtr(row, "intl_offer_pct"),
			},
		})
	}
	return rows, nil
}

// CategorizeAdmissionTest buckets a free-text admission-test description.
// BMAT was phased out after 2023, leaving UCAT as the only standard test.
func CategorizeAdmissionTest(text *string) string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return "Unknown"
	}
	if strings.Contains(strings.ToLower(*text), "ucat") {
		return "UCAT"
	}
	return "Other"
}
