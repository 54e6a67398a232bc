// Package taxonomy holds the static configuration tables behind the role
// taxonomy engine: the functional domain table, the seniority scale, and the
// word lists used by title normalization. Tables are immutable after process
// start and are passed by reference into the classifier functions so they can
// be substituted in tests.
package taxonomy

// Seniority is one of the six ordered seniority levels.
type Seniority string

// Seniority levels, ordered from most junior to most senior.
const (
	SeniorityEntry     Seniority = "entry"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityDirector  Seniority = "director"
	SeniorityVP        Seniority = "vp"
	SeniorityExecutive Seniority = "executive"
)

// seniorityLabels maps levels to display labels used in generated kit names.
var seniorityLabels = map[Seniority]string{
	SeniorityEntry:     "Entry",
	SeniorityMid:       "Mid-Level",
	SenioritySenior:    "Senior",
	SeniorityDirector:  "Director",
	SeniorityVP:        "VP",
	SeniorityExecutive: "Executive",
}

// Label returns the human-readable display label for a seniority level.
func (s Seniority) Label() string {
	if label, ok := seniorityLabels[s]; ok {
		return label
	}
	return seniorityLabels[SeniorityMid]
}

// Bucket collapses the six-level scale to the three-level bucket stored on a
// Role Kit: director, vp and executive all coarsen to senior.
func (s Seniority) Bucket() Seniority {
	switch s {
	case SeniorityDirector, SeniorityVP, SeniorityExecutive:
		return SenioritySenior
	case SeniorityEntry, SeniorityMid, SenioritySenior:
		return s
	default:
		return SeniorityMid
	}
}

// IsBucket reports whether s is one of the three storable buckets.
func (s Seniority) IsBucket() bool {
	return s == SeniorityEntry || s == SeniorityMid || s == SenioritySenior
}
