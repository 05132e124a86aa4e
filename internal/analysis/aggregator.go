package analysis

import (
	"errors"
	"math"

	"resume-insight/internal/catalog"
	"resume-insight/internal/matcher"
	"resume-insight/internal/resume"
)

var ErrInvalidWeights = errors.New("analysis weights must sum to a positive value")

// Weights sets how much each section score and the keyword score count toward the
// overall score. Sections missing from the map count zero.
type Weights struct {
	Sections map[string]float64
	Keywords float64
}

// DefaultWeights sums to 1.
var DefaultWeights = Weights{
	Sections: map[string]float64{
		SectionContact:    0.10,
		SectionSummary:    0.15,
		SectionExperience: 0.30,
		SectionSkills:     0.20,
		SectionEducation:  0.10,
	},
	Keywords: 0.15,
}

// Aggregator builds analysis reports.
type Aggregator struct {
	Weights Weights
}

func NewAggregator() *Aggregator {
	return &Aggregator{Weights: DefaultWeights}
}

// Analyze matches r against the keywords of jobID, falling back to the default keyword
// list for an empty or unknown id, and combines the result with the static feedback.
func (a *Aggregator) Analyze(r resume.ParsedResume, jobID string) (Report, error) {
	keywords := catalog.KeywordsFor(jobID)
	match := matcher.Match(r, keywords)
	sections := staticSections()

	score, err := a.overall(sections, match.MatchScore)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Score:    score,
		Feedback: staticFeedback(),
		KeywordMatch: KeywordSummary{
			Score:   match.MatchScore,
			Matched: match.Matched(),
			Missing: match.MissingKeywords,
		},
		Match:          match,
		Sections:       sections,
		FeedbackSource: FeedbackSourceStatic,
	}
	if p, err := catalog.Get(jobID); err == nil {
		report.JobID = p.ID
		report.JobTitle = p.Title
	}
	return report, nil
}

func (a *Aggregator) overall(sections []Section, keywordScore int) (int, error) {
	var total, weighted float64
	for _, s := range sections {
		w := a.Weights.Sections[s.Name]
		if w < 0 {
			return 0, ErrInvalidWeights
		}
		total += w
		weighted += w * float64(s.Score)
	}
	if a.Weights.Keywords < 0 {
		return 0, ErrInvalidWeights
	}
	total += a.Weights.Keywords
	weighted += a.Weights.Keywords * float64(keywordScore)
	if total <= 0 {
		return 0, ErrInvalidWeights
	}
	return int(math.Round(weighted / total)), nil
}
