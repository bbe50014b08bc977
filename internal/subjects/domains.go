package subjects

// Broad domain labels, the coarse grouping shown alongside each course.
const (
	DomainComputing   = "Computing & Technology"
	DomainEngineering = "Engineering"
	DomainMathsStats  = "Mathematics & Statistics"
	DomainPhysical    = "Physical Sciences"
	DomainLife        = "Life Sciences"
	DomainMedicine    = "Medicine & Health"
	DomainBusiness    = "Business & Economics"
	DomainSocial      = "Social Sciences"
	DomainLaw         = "Law"
	DomainHumanities  = "Humanities"
	DomainArts        = "Arts"
	DomainOther       = "Other"
)

// Domains lists every domain label in display order.
var Domains = []string{
	DomainComputing,
	DomainEngineering,
	DomainMathsStats,
	DomainPhysical,
	DomainLife,
	DomainMedicine,
	DomainBusiness,
	DomainSocial,
	DomainLaw,
	DomainHumanities,
	DomainArts,
	DomainOther,
}

// subjectToDomain maps QS subject labels to their broad domain.
var subjectToDomain = map[string]string{
	// STEM
	"Computer Science":         DomainComputing,
	"Data Science":             DomainComputing,
	"Engineering & Technology": DomainEngineering,
	"Engineering - Chemical":   DomainEngineering,
	"Engineering - Civil":      DomainEngineering,
	"Engineering - Electrical": DomainEngineering,
	"Engineering - Mechanical": DomainEngineering,
	"Engineering - Mineral":    DomainEngineering,
	"Petroleum Engineering":    DomainEngineering,
	"Mathematics":              DomainMathsStats,
	"Statistics":               DomainMathsStats,
	"Physics":                  DomainPhysical,
	"Chemistry":                DomainPhysical,
	"Materials Science":        DomainPhysical,
	"Earth & Marine Sciences":  DomainPhysical,
	"Geology":                  DomainPhysical,
	"Geophysics":               DomainPhysical,
	"Environmental Sciences":   DomainPhysical,
	"Biological":               DomainLife,
	"Anatomy":                  DomainLife,
	"Natural Sciences":         DomainLife,

	// Health
	"Medicine":           DomainMedicine,
	"Dentistry":          DomainMedicine,
	"Nursing":            DomainMedicine,
	"Pharmacy":           DomainMedicine,
	"Veterinary Science": DomainMedicine,
	"Psychology":         DomainSocial,

	// Business
	"Accounting":               DomainBusiness,
	"Business":                 DomainBusiness,
	"Marketing":                DomainBusiness,
	"Economics & Econometrics": DomainBusiness,
	"Hospitality":              DomainBusiness,

	// Social sciences
	"Law":                     DomainLaw,
	"Politics":                DomainSocial,
	"Sociology":               DomainSocial,
	"Anthropology":            DomainSocial,
	"Education":               DomainSocial,
	"Development Studies":     DomainSocial,
	"Social Policy":           DomainSocial,
	"Communication":           DomainSocial,
	"Geography":               DomainSocial,
	"Area Studies":            DomainSocial,
	"Sports-related Subjects": DomainSocial,

	// Humanities
	"History$":         DomainHumanities,
	"History of Art":   DomainHumanities,
	"Archaeology":      DomainHumanities,
	"Classics":         DomainHumanities,
	"Philosophy":       DomainHumanities,
	"Theology":         DomainHumanities,
	"English Language": DomainHumanities,
	"Modern Languages": DomainHumanities,
	"Linguistics":      DomainHumanities,
	"Music":            DomainArts,
	"Performing Arts":  DomainArts,
	"Art & Design":     DomainArts,
	"Architecture":     DomainArts,
}
