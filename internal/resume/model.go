package resume

// ParsedResume is the structured record produced by a Parser.
type ParsedResume struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Experience is one work history entry.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Date        string   `json:"date"`
	Description []string `json:"description,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Date        string `json:"date"`
}

// Normalize replaces nil slices with empty ones so the record serializes with [] instead of null.
func (r ParsedResume) Normalize() ParsedResume {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	return r
}

// Clone returns a deep copy of the record.
func (r ParsedResume) Clone() ParsedResume {
	out := r
	out.Skills = append([]string(nil), r.Skills...)
	out.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Description = append([]string(nil), exp.Description...)
		out.Experience[i] = exp
	}
	out.Education = append([]Education(nil), r.Education...)
	return out.Normalize()
}
