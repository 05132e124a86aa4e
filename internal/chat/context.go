package chat

import (
	"fmt"
	"strings"

	"resume-insight/internal/catalog"
	"resume-insight/internal/resume"
)

// BuildContext renders the résumé and target job as the free-text context the
// responder reads. Either part may be absent.
func BuildContext(r *resume.ParsedResume, job *catalog.JobProfile) string {
	var resumePart, jobPart string
	if r != nil {
		education := make([]string, 0, len(r.Education))
		for _, edu := range r.Education {
			education = append(education, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
		}
		resumePart = fmt.Sprintf(
			"The user has uploaded a resume with the following information:\nName: %s\nSkills: %s\nExperience: %d positions\nEducation: %s\n",
			r.Name,
			strings.Join(r.Skills, ", "),
			len(r.Experience),
			strings.Join(education, ", "),
		)
	}
	if job != nil {
		jobPart = fmt.Sprintf(
			"The user is targeting a %s position. Relevant keywords for this role include: %s.",
			job.Title,
			strings.Join(job.Keywords, ", "),
		)
	}
	return strings.TrimSpace(resumePart + " " + jobPart)
}
