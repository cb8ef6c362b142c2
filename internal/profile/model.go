package profile

// Profile is the structured record derived from one raw profile document.
// It is a pure value: built per request, never persisted with identity of
// its own, and safe to marshal directly for consumers.
type Profile struct {
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
}

// ExperienceEntry is one position parsed from the experience section.
// Dates are ISO "YYYY-MM" when parseable; otherwise the raw text is kept and
// a note is attached instead of dropping the value.
type ExperienceEntry struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location,omitempty"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Description   string   `json:"description"`
	LowConfidence bool     `json:"low_confidence,omitempty"`
	Notes         []string `json:"notes,omitempty"`
}

// EducationEntry is one degree parsed from the education section.
type EducationEntry struct {
	School        string   `json:"school"`
	Degree        string   `json:"degree"`
	Field         string   `json:"field"`
	StartYear     string   `json:"start_year"`
	EndYear       string   `json:"end_year"`
	LowConfidence bool     `json:"low_confidence,omitempty"`
	Notes         []string `json:"notes,omitempty"`
}

// IsEmpty reports whether every field of the entry is empty. Empty entries
// are dropped rather than emitted.
func (e ExperienceEntry) IsEmpty() bool {
	return e.Title == "" && e.Company == "" && e.Location == "" &&
		e.StartDate == "" && e.EndDate == "" && e.Description == ""
}

// IsEmpty reports whether every field of the entry is empty.
func (e EducationEntry) IsEmpty() bool {
	return e.School == "" && e.Degree == "" && e.Field == "" &&
		e.StartYear == "" && e.EndYear == ""
}
