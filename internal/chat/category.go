package chat

import "strings"

// Category groups chat messages by résumé topic.
type Category string

const (
	Experience Category = "experience"
	Skills     Category = "skills"
	ATS        Category = "ats"
	Format     Category = "format"
	Summary    Category = "summary"
	Education  Category = "education"
	General    Category = "general"
)

type rule struct {
	category Category
	triggers []string
}

// Rules are checked in order; the first group with a matching trigger wins.
var rules = []rule{
	{Experience, []string{"experience", "work history", "job"}},
	{Skills, []string{"skill", "ability", "qualification"}},
	{ATS, []string{"ats", "applicant tracking", "keyword"}},
	{Format, []string{"format", "layout", "design", "template"}},
	{Summary, []string{"summary", "profile", "objective"}},
	{Education, []string{"education", "degree", "university", "college"}},
}

// Classify maps a message to its category by case-insensitive substring match.
func Classify(message string) Category {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lower, trigger) {
				return r.category
			}
		}
	}
	return General
}

// Replies returns the canned replies of a category.
func Replies(c Category) []string {
	return append([]string(nil), cannedReplies[c]...)
}
