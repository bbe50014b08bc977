package dataset

import (
	"github.com/google/uuid"

	"github.com/seetoh/coursefinder/internal/grades"
	"github.com/seetoh/coursefinder/internal/ranking"
	"github.com/seetoh/coursefinder/internal/subjects"
)

// Merge joins the raw extracts into the denormalized master record set.
// All joins are left-preserving from the course table: every course row
// yields exactly one master record, and unmatched secondary columns stay
// nil. Merge never fails on sparse data — structural problems are caught
// at load time.
func Merge(src *Sources) []Course {
	globalByUni := make(map[string]GlobalRankingRow, len(src.Global))
	for _, g := range src.Global {
		globalByUni[g.University] = g
	}

	type subjectKey struct{ university, subject string }
	subjectRanks := make(map[subjectKey]SubjectRankingRow, len(src.Subject))
	for _, s := range src.Subject {
		subjectRanks[subjectKey{s.University, s.Subject}] = s
	}

	medByUni := make(map[string]MedSchoolRow, len(src.MedSchools))
	for _, m := range src.MedSchools {
		medByUni[m.University] = m
	}

	type admissionsKey struct{ university, course string }
	admissions := make(map[admissionsKey]AdmissionsInfo, len(src.Admissions))
	for _, a := range src.Admissions {
		admissions[admissionsKey{a.University, a.Course}] = a.Stats
	}

	records := make([]Course, 0, len(src.Courses))
	for _, row := range src.Courses {
		rec := Course{
			ID:           uuid.New().String(),
			University:   row.University,
			Course:       row.Course,
			UCASCode:     row.UCASCode,
			StudyMode:    row.StudyMode,
			Duration:     row.Duration,
			CourseURL:    row.CourseURL,
			ALevelGrades: row.ALevelGrades,
			IBPointsRaw:  row.IBPointsRaw,
		}

		rec.ALevelScore = grades.ParseALevel(row.ALevelGrades)
		rec.IBScore = grades.ParseIB(row.IBPointsRaw)

		rec.Domain = subjects.Domain(row.Course)
		if primary, ok := subjects.Primary(row.Course); ok {
			rec.QSSubject = &primary
		}

		if g, ok := globalByUni[rec.University]; ok {
			rec.QSGlobalRank = copyFloat(g.QSRank)
			rec.THERank = copyFloat(g.THERank)
		}

		// A course with no classified subject never matches a subject rank.
		if rec.QSSubject != nil {
			if s, ok := subjectRanks[subjectKey{rec.University, *rec.QSSubject}]; ok {
				rec.QSSubjectRank = copyFloat(s.Rank)
			}
		}

		// Medical columns attach only to Medicine & Health records;
		// everything else keeps them structurally absent.
		if rec.Domain == subjects.DomainMedicine {
			if m, ok := medByUni[rec.University]; ok {
				rec.Med = &MedInfo{
					TestCategory:   m.TestCategory,
					AdmissionTest:  m.AdmissionTest,
					InterviewType:  m.InterviewType,
					TeachingStyle:  m.TeachingStyle,
					IntlApplicants: m.IntlApplicants,
					IntlOffers:     m.IntlOffers,
					IntlOfferPct:   m.IntlOfferPct,
				}
			}
		}

		if a, ok := admissions[admissionsKey{rec.University, rec.Course}]; ok {
			stats := a
			rec.Admissions = &stats
		}

		rec.BestGlobalRank = ranking.BestGlobalRank(rec.QSGlobalRank, rec.THERank)
		records = append(records, rec)
	}

	normalizeRanks(records)
	return records
}

// normalizeRanks fills the 0-100 normalized counterparts of the three rank
// columns. The scale depends on the worst rank observed across the whole
// record set, so this runs once over all records per column.
func normalizeRanks(records []Course) {
	qs := make([]*float64, len(records))
	the := make([]*float64, len(records))
	subject := make([]*float64, len(records))
	for i := range records {
		qs[i] = records[i].QSGlobalRank
		the[i] = records[i].THERank
		subject[i] = records[i].QSSubjectRank
	}

	qsNorm := ranking.NormalizeColumn(qs)
	theNorm := ranking.NormalizeColumn(the)
	subjectNorm := ranking.NormalizeColumn(subject)

	for i := range records {
		records[i].QSGlobalNorm = qsNorm[i]
		records[i].THENorm = theNorm[i]
		records[i].QSSubjectNorm = subjectNorm[i]
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
