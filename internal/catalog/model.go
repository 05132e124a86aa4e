package catalog

// JobProfile is a target role with the ordered keywords used for matching.
type JobProfile struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Keywords []string `json:"keywords"`
}

// Summary is the id/title pair returned by List.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (p JobProfile) clone() JobProfile {
	out := p
	out.Keywords = append([]string(nil), p.Keywords...)
	return out
}
