package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/grades"
	"github.com/seetoh/coursefinder/internal/query"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []dataset.Course:
		return coursesTable(w, v)
	case []query.Group:
		return groupedTable(w, v)
	case *dataset.Course:
		return courseDetail(w, v)
	case []dataset.MedSchoolRow:
		return MedTable(w, v)
	case *dataset.Stats:
		return statsTable(w, v)
	case query.Options:
		return optionsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func coursesTable(w io.Writer, courses []dataset.Course) error {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("UNIVERSITY", "COURSE", "A-LEVEL", "IB", "QS", "THE", "SUBJ", "SCORE")

	for _, c := range courses {
		tbl.Append([]string{
			truncate(c.University, 30),
			truncate(c.Course, 40),
			orDash(c.ALevelGrades),
			fmtIntPtr(c.IBScore),
			fmtRankPtr(c.QSGlobalRank),
			fmtRankPtr(c.THERank),
			fmtRankPtr(c.QSSubjectRank),
			fmtScorePtr(c.WeightedScore),
		})
	}

	if err := tbl.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d courses\n", len(courses))
	return nil
}

func groupedTable(w io.Writer, groups []query.Group) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return nil
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.Key, len(g.Records))
		if err := coursesTable(w, g.Records); err != nil {
			return err
		}
	}
	return nil
}

func courseDetail(w io.Writer, c *dataset.Course) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "University:\t%s\n", c.University)
	fmt.Fprintf(tw, "Course:\t%s\n", c.Course)
	fmt.Fprintf(tw, "Domain:\t%s\n", c.Domain)
	if c.QSSubject != nil {
		fmt.Fprintf(tw, "QS subject:\t%s\n", *c.QSSubject)
	}
	if c.UCASCode != "" {
		fmt.Fprintf(tw, "UCAS code:\t%s\n", c.UCASCode)
	}
	fmt.Fprintf(tw, "Study mode:\t%s\n", orDash(c.StudyMode))
	fmt.Fprintf(tw, "Duration:\t%s\n", orDash(c.Duration))
	fmt.Fprintf(tw, "A-level offer:\t%s\n", orDash(c.ALevelGrades))
	fmt.Fprintf(tw, "IB offer:\t%s\n", orDash(c.IBPointsRaw))
	fmt.Fprintf(tw, "QS world rank:\t%s\n", fmtRankPtr(c.QSGlobalRank))
	fmt.Fprintf(tw, "THE world rank:\t%s\n", fmtRankPtr(c.THERank))
	fmt.Fprintf(tw, "QS subject rank:\t%s\n", fmtRankPtr(c.QSSubjectRank))
	if c.WeightedScore != nil {
		fmt.Fprintf(tw, "Score:\t%s\n", fmtScorePtr(c.WeightedScore))
	}
	if a := c.Admissions; a != nil {
		fmt.Fprintf(tw, "Applicants:\t%s\n", fmtIntPtr(a.TotalApplicants))
		fmt.Fprintf(tw, "Offers:\t%s\n", fmtIntPtr(a.TotalOffers))
		fmt.Fprintf(tw, "Offer rate:\t%s\n", fmtPctPtr(a.TotalOfferPct))
	}
	if m := c.Med; m != nil {
		fmt.Fprintf(tw, "Admission test:\t%s\n", m.TestCategory)
		if m.InterviewType != nil {
			fmt.Fprintf(tw, "Interview:\t%s\n", *m.InterviewType)
		}
		if m.TeachingStyle != nil {
			fmt.Fprintf(tw, "Teaching style:\t%s\n", *m.TeachingStyle)
		}
		fmt.Fprintf(tw, "Intl offer rate:\t%s\n", fmtPctPtr(m.IntlOfferPct))
	}
	if c.CourseURL != "" {
		fmt.Fprintf(tw, "URL:\t%s\n", c.CourseURL)
	}
	return tw.Flush()
}

// MedTable prints medical-school rows with their requirement columns.
func MedTable(w io.Writer, rows []dataset.MedSchoolRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No medical schools found.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("UNIVERSITY", "A-LEVEL", "IB", "TEST", "INTERVIEW", "SMC", "INTL OFFER %")

	for _, r := range rows {
		tbl.Append([]string{
			truncate(r.University, 30),
			orDash(deref(r.ALevelReq)),
			orDash(deref(r.IBReq)),
			r.TestCategory,
			truncate(orDash(deref(r.InterviewType)), 20),
			orDash(deref(r.SingaporeApproved)),
			fmtPctPtr(r.IntlOfferPct),
		})
	}

	if err := tbl.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d medical schools\n", len(rows))
	return nil
}

func statsTable(w io.Writer, s *dataset.Stats) error {
	fmt.Fprintln(w, "Dataset Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total courses:          %d\n", s.Courses)
	fmt.Fprintf(w, "Universities:           %d\n", s.Universities)
	fmt.Fprintf(w, "Domains:                %d\n", s.Domains)
	fmt.Fprintf(w, "With subject ranking:   %d\n", s.WithSubjectRank)
	fmt.Fprintf(w, "With med-school data:   %d\n", s.WithMedData)
	fmt.Fprintf(w, "With admissions data:   %d\n", s.WithAdmissions)
	return nil
}

func optionsTable(w io.Writer, o query.Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Universities (%d):\t%s\n", len(o.Universities), strings.Join(o.Universities, ", "))
	fmt.Fprintf(tw, "Domains (%d):\t%s\n", len(o.Domains), strings.Join(o.Domains, ", "))
	fmt.Fprintf(tw, "Study modes:\t%s\n", strings.Join(o.StudyModes, ", "))
	fmt.Fprintf(tw, "Durations:\t%s\n", strings.Join(o.Durations, ", "))
	fmt.Fprintf(tw, "A-level score range:\t%d (%s) to %d (%s)\n",
		o.ALevelScoreMin, grades.DisplayGrade(o.ALevelScoreMin),
		o.ALevelScoreMax, grades.DisplayGrade(o.ALevelScoreMax))
	fmt.Fprintf(tw, "IB score range:\t%d-%d\n", o.IBScoreMin, o.IBScoreMax)

	thresholds := make([]string, 0, len(grades.ALevelOptions))
	for _, g := range grades.ALevelOptions {
		thresholds = append(thresholds, g.Label)
	}
	fmt.Fprintf(tw, "A-level thresholds:\t%s\n", strings.Join(thresholds, ", "))

	ib := grades.IBPointsOptions()
	fmt.Fprintf(tw, "IB thresholds:\t%d down to %d\n", ib[0], ib[len(ib)-1])
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func fmtRankPtr(p *float64) string {
	if p == nil {
		return "-"
	}
	if *p == float64(int(*p)) {
		return fmt.Sprintf("%d", int(*p))
	}
	return fmt.Sprintf("%.1f", *p)
}

func fmtScorePtr(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *p)
}

func fmtPctPtr(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *p)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
