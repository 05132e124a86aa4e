package analysis

import "resume-insight/internal/matcher"

// FeedbackSourceStatic marks feedback and section scores that do not depend on résumé content.
const FeedbackSourceStatic = "static"

// Report is the full analysis returned for one résumé and target job.
type Report struct {
	Score          int                 `json:"score"`
	Feedback       Feedback            `json:"feedback"`
	KeywordMatch   KeywordSummary      `json:"keywordMatch"`
	Match          matcher.MatchReport `json:"match"`
	Sections       []Section           `json:"sections"`
	JobID          string              `json:"jobId"`
	JobTitle       string              `json:"jobTitle"`
	FeedbackSource string              `json:"feedbackSource"`
}

type Feedback struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// KeywordSummary is the matched/missing view of a MatchReport.
type KeywordSummary struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Section is a per-section score with a feedback line.
type Section struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}
