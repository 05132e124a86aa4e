package resume

import "context"

// StubParser ignores the document and returns the sample résumé. It never fails.
type StubParser struct{}

func (StubParser) Mode() Mode { return ModeStub }

func (StubParser) Parse(ctx context.Context, _ Document) (ParsedResume, error) {
	return Sample(), nil
}

// Sample returns a fresh copy of the fixed résumé used in stub mode.
func Sample() ParsedResume {
	return ParsedResume{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "(123) 456-7890",
		Location: "San Francisco, CA",
		Summary: "Experienced software developer with 5+ years of experience in building web applications " +
			"using React, Node.js, and TypeScript. Passionate about creating user-friendly interfaces and " +
			"optimizing application performance.",
		Skills: []string{
			"JavaScript", "React", "Node.js", "TypeScript", "HTML/CSS", "Redux", "GraphQL", "REST API", "Git", "Agile",
		},
		Experience: []Experience{
			{
				Title:   "Senior Frontend Developer",
				Company: "Tech Innovations Inc.",
				Date:    "2020 - Present",
				Description: []string{
					"Led the development of a React-based dashboard that improved user engagement by 40%",
					"Implemented state management using Redux, resulting in more predictable application behavior",
					"Collaborated with UX designers to create responsive and accessible user interfaces",
					"Mentored junior developers and conducted code reviews to maintain code quality",
				},
			},
			{
				Title:   "Web Developer",
				Company: "Digital Solutions",
				Date:    "2018 - 2020",
				Description: []string{
					"Developed and maintained client websites using React and Node.js",
					"Integrated third-party APIs and services to enhance website functionality",
					"Optimized website performance, improving load times by 30%",
					"Participated in agile development processes, including daily stand-ups and sprint planning",
				},
			},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "University of Technology",
				Date:        "2018",
			},
		},
	}
}
