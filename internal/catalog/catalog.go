package catalog

import "strings"

// DefaultJobID is the profile callers fall back to when none is selected.
const DefaultJobID = "software-developer"

// DefaultKeywords is the keyword list used when a job id is empty or unknown.
var DefaultKeywords = []string{
	"JavaScript",
	"React",
	"TypeScript",
	"Node.js",
	"AWS",
	"CI/CD",
	"Jest",
	"Agile",
	"REST API",
	"GraphQL",
	"Performance optimization",
	"Team leadership",
	"Python",
}

var profiles = []JobProfile{
	{
		ID:      "software-developer",
		Title:   "Software Developer",
		Company: "Tech Innovations Inc.",
		Keywords: []string{
			"JavaScript", "React", "TypeScript", "Node.js", "AWS", "CI/CD", "Jest", "Agile",
			"REST API", "GraphQL", "Performance optimization", "Team leadership", "Python", "Git",
			"Problem solving", "Communication skills",
		},
	},
	{
		ID:      "data-scientist",
		Title:   "Data Scientist",
		Company: "Data Analytics Co.",
		Keywords: []string{
			"Python", "R", "SQL", "Machine Learning", "Data Visualization", "Statistical Analysis",
			"TensorFlow", "PyTorch", "Pandas", "NumPy", "Jupyter", "Big Data", "Data Mining",
			"A/B Testing", "Natural Language Processing", "Deep Learning",
		},
	},
	{
		ID:      "product-manager",
		Title:   "Product Manager",
		Company: "Product Innovations",
		Keywords: []string{
			"Product Strategy", "User Research", "Agile", "Scrum", "Roadmapping",
			"Stakeholder Management", "Market Analysis", "User Stories", "KPIs", "Analytics",
			"A/B Testing", "Wireframing", "Prototyping", "Communication", "Leadership", "Prioritization",
		},
	},
	{
		ID:      "ux-designer",
		Title:   "UX Designer",
		Company: "Design Solutions",
		Keywords: []string{
			"User Research", "Wireframing", "Prototyping", "Figma", "Adobe XD", "Sketch", "User Testing",
			"Information Architecture", "Interaction Design", "Visual Design", "Accessibility",
			"Design Systems", "User Flows", "Usability Testing", "Design Thinking",
		},
	},
	{
		ID:      "marketing-specialist",
		Title:   "Marketing Specialist",
		Company: "Marketing Experts",
		Keywords: []string{
			"Digital Marketing", "Social Media", "Content Creation", "SEO", "SEM", "Google Analytics",
			"Email Marketing", "Campaign Management", "Market Research", "Brand Strategy", "CRM",
			"Adobe Creative Suite", "Copywriting", "A/B Testing", "Marketing Automation",
		},
	},
}

var byID = func() map[string]int {
	idx := make(map[string]int, len(profiles))
	for i, p := range profiles {
		idx[p.ID] = i
	}
	return idx
}()

// Get returns the profile with the given id or ErrNotFound.
func Get(id string) (JobProfile, error) {
	i, ok := byID[strings.TrimSpace(id)]
	if !ok {
		return JobProfile{}, ErrNotFound
	}
	return profiles[i].clone(), nil
}

// List returns every profile id and title in declaration order.
func List() []Summary {
	out := make([]Summary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Summary{ID: p.ID, Title: p.Title})
	}
	return out
}

// Resolve returns the profile for id, or the default profile when id is empty or unknown.
// The boolean reports whether the requested id was found.
func Resolve(id string) (JobProfile, bool) {
	if p, err := Get(id); err == nil {
		return p, true
	}
	p, _ := Get(DefaultJobID)
	return p, false
}

// KeywordsFor returns the keywords of the given profile, or DefaultKeywords when id
// is empty or unknown. Get itself never substitutes a default.
func KeywordsFor(id string) []string {
	if p, err := Get(id); err == nil {
		return p.Keywords
	}
	return append([]string(nil), DefaultKeywords...)
}
