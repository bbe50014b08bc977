package dataset

// Course is the denormalized master record, one per offered undergraduate
// course. Optional fields are pointers: nil means "no data", which is
// distinct from any valid value. Records are immutable after Merge except
// for WeightedScore, which is recomputed per request from the current
// blend weight.
type Course struct {
	ID string `json:"id"`

	University string `json:"university"`
	Course     string `json:"course"`
	UCASCode   string `json:"ucas_code,omitempty"`
	StudyMode  string `json:"study_mode,omitempty"`
	Duration   string `json:"duration,omitempty"`
	CourseURL  string `json:"course_url,omitempty"`

	ALevelGrades string `json:"alevel_grades,omitempty"`
	ALevelScore  *int   `json:"alevel_score,omitempty"`
	IBPointsRaw  string `json:"ib_points_raw,omitempty"`
	IBScore      *int   `json:"ib_score,omitempty"`

	Domain    string  `json:"domain"`
	QSSubject *string `json:"qs_subject,omitempty"`

	QSGlobalRank   *float64 `json:"qs_global_rank,omitempty"`
	THERank        *float64 `json:"the_rank,omitempty"`
	QSSubjectRank  *float64 `json:"qs_subject_rank,omitempty"`
	BestGlobalRank *float64 `json:"best_global_rank,omitempty"`

	QSGlobalNorm  *float64 `json:"qs_global_norm,omitempty"`
	THENorm       *float64 `json:"the_norm,omitempty"`
	QSSubjectNorm *float64 `json:"qs_subject_norm,omitempty"`

	// Computed on demand, never persisted.
	WeightedScore *float64 `json:"weighted_score,omitempty"`

	// Present only for Medicine & Health courses with a matching
	// medical-school record.
	Med *MedInfo `json:"med,omitempty"`

	// Present only for the small curated set of courses with matching
	// admissions statistics.
	Admissions *AdmissionsInfo `json:"admissions,omitempty"`
}

// MedInfo carries medical-school requirement columns joined by university.
type MedInfo struct {
	TestCategory   string   `json:"test_category"`
	AdmissionTest  *string  `json:"admission_test,omitempty"`
	InterviewType  *string  `json:"interview_type,omitempty"`
	TeachingStyle  *string  `json:"teaching_style,omitempty"`
	IntlApplicants *int     `json:"intl_applicants,omitempty"`
	IntlOffers     *int     `json:"intl_offers,omitempty"`
	IntlOfferPct   *float64 `json:"intl_offer_pct,omitempty"`
}

// AdmissionsInfo carries per-course applicant and offer statistics.
type AdmissionsInfo struct {
	TotalApplicants *int     `json:"total_applicants,omitempty"`
	UKApplicants    *int     `json:"uk_applicants,omitempty"`
	IntlApplicants  *int     `json:"intl_applicants,omitempty"`
	TotalOffers     *int     `json:"total_offers,omitempty"`
	UKOffers        *int     `json:"uk_offers,omitempty"`
	IntlOffers      *int     `json:"intl_offers,omitempty"`
	TotalOfferPct   *float64 `json:"total_offer_pct,omitempty"`
	UKOfferPct      *float64 `json:"uk_offer_pct,omitempty"`
	IntlOfferPct    *float64 `json:"intl_offer_pct,omitempty"`
}

// CourseRow is a raw course extract row, as supplied by the course catalog.
type CourseRow struct {
	University   string
	Course       string
	UCASCode     string
	StudyMode    string
	Duration     string
	ALevelGrades string
	IBPointsRaw  string
	CourseURL    string
}

// GlobalRankingRow is one university's entry in the merged global rankings
// extract. Rank strings ("=5", "101-150") are resolved upstream by the
// loader via ranking.ParseRank.
type GlobalRankingRow struct {
	University string
	QSRank     *float64
	QSScore    *float64
	THERank    *float64
	THEScore   *float64
}

// SubjectRankingRow is one (university, subject) entry in the QS subject
// rankings extract.
type SubjectRankingRow struct {
	University string
	Subject    string
	Rank       *float64
	Score      *float64
}

// MedSchoolRow is one medical school's requirements and international
// admissions statistics, keyed by university.
type MedSchoolRow struct {
	University        string   `json:"university"`
	Course            *string  `json:"course,omitempty"`
	ALevelReq         *string  `json:"alevel_req,omitempty"`
	IBReq             *string  `json:"ib_req,omitempty"`
	GCSEReq           *string  `json:"gcse_req,omitempty"`
	AdmissionTest     *string  `json:"admission_test,omitempty"`
	TestCategory      string   `json:"test_category"`
	InterviewType     *string  `json:"interview_type,omitempty"`
	TeachingStyle     *string  `json:"teaching_style,omitempty"`
	WorkExperience    *string  `json:"work_experience,omitempty"`
	SingaporeApproved *string  `json:"singapore_approved,omitempty"`
	IntlApplicants    *int     `json:"intl_applicants,omitempty"`
	IntlOffers        *int     `json:"intl_offers,omitempty"`
	IntlOfferPct      *float64 `json:"intl_offer_pct,omitempty"`
}

// AdmissionsRow is one (university, course) entry of the admissions
// statistics extract.
type AdmissionsRow struct {
	University string
	Course     string
	Stats      AdmissionsInfo
}

// Sources bundles the five raw extracts the merger consumes.
type Sources struct {
	Courses    []CourseRow
	Global     []GlobalRankingRow
	Subject    []SubjectRankingRow
	MedSchools []MedSchoolRow
	Admissions []AdmissionsRow
}

// Stats summarizes a record set for the stats view.
type Stats struct {
	Courses         int `json:"courses"`
	Universities    int `json:"universities"`
	Domains         int `json:"domains"`
	WithSubjectRank int `json:"with_subject_rank"`
	WithMedData     int `json:"with_med_data"`
	WithAdmissions  int `json:"with_admissions"`
}

// ComputeStats aggregates summary counts over a record set.
func ComputeStats(records []Course) Stats {
	s := Stats{Courses: len(records)}
	unis := map[string]struct{}{}
	domains := map[string]struct{}{}
	for _, r := range records {
		unis[r.University] = struct{}{}
		domains[r.Domain] = struct{}{}
		if r.QSSubjectRank != nil {
			s.WithSubjectRank++
		}
		if r.Med != nil {
			s.WithMedData++
		}
		if r.Admissions != nil {
			s.WithAdmissions++
		}
	}
	s.Universities = len(unis)
	s.Domains = len(domains)
	return s
}
