package resume

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"resume-insight/internal/extract"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?\d{1,4}\)?[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}`)
	datePattern     = regexp.MustCompile(`(?i)\b((?:19|20)\d{2}(?:\s*[-–]\s*(?:present|current|(?:19|20)\d{2}))?)\b`)
	locationPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z .]+,\s*[A-Z]{2}\b`)
	bulletPrefix    = regexp.MustCompile(`^\s*[-•*▪◦·]\s*`)
)

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionSkills
	sectionExperience
	sectionEducation
)

var headings = map[string]section{
	"summary":              sectionSummary,
	"professional summary": sectionSummary,
	"profile":              sectionSummary,
	"objective":            sectionSummary,
	"skills":               sectionSkills,
	"technical skills":     sectionSkills,
	"core skills":          sectionSkills,
	"experience":           sectionExperience,
	"work experience":      sectionExperience,
	"work history":         sectionExperience,
	"employment":           sectionExperience,
	"education":            sectionEducation,
}

// ExtractingParser reads PDF or DOCX text and recovers fields with line heuristics.
type ExtractingParser struct{}

func (ExtractingParser) Mode() Mode { return ModeExtract }

func (ExtractingParser) Parse(ctx context.Context, doc Document) (ParsedResume, error) {
	text, err := extract.TextFromBytes(ctx, doc.Data, doc.MimeType, doc.FileName)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ParsedResume{}, err
		}
		return ParsedResume{}, &ParseError{Kind: KindUnreadableFormat, Msg: "could not read document", Err: err}
	}

	parsed := parseText(text)
	if parsed.Name == "" || parsed.Email == "" {
		return ParsedResume{}, &ParseError{Kind: KindExtractionAmbiguous, Msg: "no name and email found in document"}
	}
	return parsed, nil
}

func parseText(text string) ParsedResume {
	out := ParsedResume{}.Normalize()
	current := sectionNone
	var summary []string

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if sec, ok := headingFor(line); ok {
			current = sec
			continue
		}

		if out.Email == "" {
			if m := emailPattern.FindString(line); m != "" {
				out.Email = m
			}
		}
		if out.Phone == "" {
			if m := phonePattern.FindString(line); m != "" && !datePattern.MatchString(m) {
				out.Phone = strings.TrimSpace(m)
			}
		}

		switch current {
		case sectionNone:
			if out.Name == "" && looksLikeName(line) {
				out.Name = line
				continue
			}
			if out.Location == "" {
				if m := locationPattern.FindString(line); m != "" {
					out.Location = strings.TrimSpace(m)
				}
			}
		case sectionSummary:
			summary = append(summary, line)
		case sectionSkills:
			out.Skills = append(out.Skills, splitSkills(line)...)
		case sectionExperience:
			if bulletPrefix.MatchString(line) && len(out.Experience) > 0 {
				last := &out.Experience[len(out.Experience)-1]
				last.Description = append(last.Description, bulletPrefix.ReplaceAllString(line, ""))
				continue
			}
			title, company, date := splitEntry(line)
			out.Experience = append(out.Experience, Experience{Title: title, Company: company, Date: date})
		case sectionEducation:
			degree, institution, date := splitEntry(line)
			out.Education = append(out.Education, Education{Degree: degree, Institution: institution, Date: date})
		}
	}

	out.Summary = strings.Join(summary, " ")
	return out
}

func headingFor(line string) (section, bool) {
	key := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	sec, ok := headings[key]
	return sec, ok
}

func looksLikeName(line string) bool {
	if emailPattern.MatchString(line) || strings.ContainsAny(line, "0123456789@|:") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 5
}

func splitSkills(line string) []string {
	line = bulletPrefix.ReplaceAllString(line, "")
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitEntry reads "Title | Company | Date", "Title at Company, Date" and similar lines.
func splitEntry(line string) (string, string, string) {
	date := ""
	if m := datePattern.FindString(line); m != "" {
		date = strings.TrimSpace(m)
		line = strings.TrimSpace(strings.Replace(line, m, "", 1))
	}
	line = strings.Trim(line, " ,|()-–")

	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	case strings.Contains(line, " at "):
		parts = strings.SplitN(line, " at ", 2)
	case strings.Contains(line, " - "):
		parts = strings.SplitN(line, " - ", 2)
	case strings.Contains(line, ","):
		parts = strings.SplitN(line, ",", 2)
	default:
		parts = []string{line}
	}

	first := strings.Trim(strings.TrimSpace(parts[0]), ",|()-–")
	second := ""
	if len(parts) > 1 {
		second = strings.Trim(strings.TrimSpace(parts[1]), " ,|()-–")
	}
	return strings.TrimSpace(first), strings.TrimSpace(second), date
}
