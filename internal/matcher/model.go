package matcher

// KeywordMatch reports whether one keyword appears in a résumé and where.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Found   bool   `json:"found"`
	Context string `json:"context,omitempty"`
}

// MatchReport is the per-keyword breakdown plus the aggregate score.
type MatchReport struct {
	Matches         []KeywordMatch `json:"matches"`
	MatchScore      int            `json:"matchScore"`
	MissingKeywords []string       `json:"missingKeywords"`
}

// Matched returns the found keywords in input order.
func (r MatchReport) Matched() []string {
	out := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Found {
			out = append(out, m.Keyword)
		}
	}
	return out
}

const (
	ContextSkills     = "Found in Skills section"
	ContextExperience = "Found in Experience section"
	ContextResume     = "Found in resume"
)
