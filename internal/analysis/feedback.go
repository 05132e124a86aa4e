package analysis

const (
	SectionContact    = "Contact Information"
	SectionSummary    = "Professional Summary"
	SectionExperience = "Work Experience"
	SectionSkills     = "Skills"
	SectionEducation  = "Education"
)

// These texts and scores are placeholders. They are the same for every résumé.

func staticFeedback() Feedback {
	return Feedback{
		Strengths: []string{
			"Strong technical skill set with in-demand technologies",
			"Clear progression in career with increasing responsibilities",
			"Quantifiable achievements (e.g., 40% performance improvement)",
			"Good educational background with relevant degrees",
		},
		Weaknesses: []string{
			"Summary is too generic and doesn't highlight unique value proposition",
			"Experience descriptions focus more on responsibilities than achievements",
			"Missing metrics and quantifiable results in some experience entries",
			"Skills section could be better organized by categories",
		},
		Suggestions: []string{
			"Add a more compelling and specific professional summary that highlights your unique value proposition",
			"Include more quantifiable achievements in your experience descriptions (metrics, percentages, etc.)",
			"Add relevant certifications to strengthen your credentials",
			"Organize skills by categories (e.g., Programming Languages, Frameworks, Tools)",
			"Include a projects section to showcase specific work examples",
			"Add relevant keywords from job descriptions to improve ATS matching",
		},
	}
}

func staticSections() []Section {
	return []Section{
		{
			Name:     SectionContact,
			Score:    95,
			Feedback: "Contact information is complete and well-formatted. Consider adding LinkedIn profile and GitHub links.",
		},
		{
			Name:     SectionSummary,
			Score:    65,
			Feedback: "Summary is too generic. Make it more specific to your unique skills and career goals.",
		},
		{
			Name:     SectionExperience,
			Score:    80,
			Feedback: "Good progression shown, but add more quantifiable achievements and results.",
		},
		{
			Name:     SectionSkills,
			Score:    85,
			Feedback: "Strong technical skills listed, but consider organizing them by categories.",
		},
		{
			Name:     SectionEducation,
			Score:    90,
			Feedback: "Education is well-presented. Consider adding relevant coursework or academic achievements.",
		},
	}
}
