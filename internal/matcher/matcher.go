package matcher

import (
	"strings"

	"resume-insight/internal/resume"
)

// Match compares a résumé against an ordered keyword list. It is pure: the same
// inputs always give the same report, and empty inputs give a zero score.
func Match(r resume.ParsedResume, keywords []string) MatchReport {
	blob := textBlob(r)
	skills := lowerAll(r.Skills)

	report := MatchReport{
		Matches:         make([]KeywordMatch, 0, len(keywords)),
		MissingKeywords: []string{},
	}
	found := 0
	for _, keyword := range keywords {
		m := KeywordMatch{Keyword: keyword}
		needle := strings.ToLower(strings.TrimSpace(keyword))
		if needle != "" && (strings.Contains(blob, needle) || containsExact(skills, needle)) {
			m.Found = true
			m.Context = locate(r, skills, needle)
			found++
		} else {
			report.MissingKeywords = append(report.MissingKeywords, keyword)
		}
		report.Matches = append(report.Matches, m)
	}
	report.MatchScore = score(found, len(keywords))
	return report
}

// score is round(100 * found / total) with halves rounded up, and 0 for no keywords.
func score(found, total int) int {
	if total == 0 {
		return 0
	}
	return (200*found + total) / (2 * total)
}

func locate(r resume.ParsedResume, skills []string, needle string) string {
	for _, s := range skills {
		if strings.Contains(s, needle) {
			return ContextSkills
		}
	}
	for _, exp := range r.Experience {
		if strings.Contains(strings.ToLower(exp.Title), needle) {
			return ContextExperience
		}
		for _, line := range exp.Description {
			if strings.Contains(strings.ToLower(line), needle) {
				return ContextExperience
			}
		}
	}
	return ContextResume
}

// textBlob joins every field value of the résumé into one lowercase string.
// Field names are left out so an empty résumé matches nothing.
func textBlob(r resume.ParsedResume) string {
	parts := []string{r.Name, r.Email, r.Phone, r.Location, r.Summary}
	parts = append(parts, r.Skills...)
	for _, exp := range r.Experience {
		parts = append(parts, exp.Title, exp.Company, exp.Date)
		parts = append(parts, exp.Description...)
	}
	for _, edu := range r.Education {
		parts = append(parts, edu.Degree, edu.Institution, edu.Date)
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

func containsExact(list []string, needle string) bool {
	for _, s := range list {
		if s == needle {
			return true
		}
	}
	return false
}
