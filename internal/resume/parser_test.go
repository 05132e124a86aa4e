package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `Jane Smith
jane.smith@example.com | (555) 123-4567 | Austin, TX

Summary
Backend engineer focused on Go services.
Skills:
Go, PostgreSQL; Docker • Kubernetes
Experience
Senior Engineer | Acme Corp | 2021 - Present
- Built billing pipeline in Go
Engineer at Initech, 2018 - 2021
Education
BSc Computer Science | State University | 2018
`

func TestStubParserIgnoresDocument(t *testing.T) {
	p := StubParser{}
	assert.Equal(t, ModeStub, p.Mode())

	got, err := p.Parse(context.Background(), Document{FileName: "garbage.pdf", Data: []byte("not a pdf")})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Len(t, got.Skills, 10)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Senior Frontend Developer", got.Experience[0].Title)
	require.Len(t, got.Education, 1)
	assert.Equal(t, "2018", got.Education[0].Date)
}

func TestSampleReturnsIndependentCopies(t *testing.T) {
	a := Sample()
	a.Skills[0] = "COBOL"
	a.Experience[0].Description[0] = "changed"
	b := Sample()
	assert.Equal(t, "JavaScript", b.Skills[0])
	assert.NotEqual(t, "changed", b.Experience[0].Description[0])
}

func TestNewParser(t *testing.T) {
	p, err := NewParser("")
	require.NoError(t, err)
	assert.Equal(t, ModeStub, p.Mode())

	p, err = NewParser("EXTRACT")
	require.NoError(t, err)
	assert.Equal(t, ModeExtract, p.Mode())

	_, err = NewParser("llm")
	assert.Error(t, err)
}

func TestParseText(t *testing.T) {
	got := parseText(sampleText)

	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "jane.smith@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)
	assert.Equal(t, "Austin, TX", got.Location)
	assert.Equal(t, "Backend engineer focused on Go services.", got.Summary)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes"}, got.Skills)

	require.Len(t, got.Experience, 2)
	assert.Equal(t, Experience{
		Title:       "Senior Engineer",
		Company:     "Acme Corp",
		Date:        "2021 - Present",
		Description: []string{"Built billing pipeline in Go"},
	}, got.Experience[0])
	assert.Equal(t, "Engineer", got.Experience[1].Title)
	assert.Equal(t, "Initech", got.Experience[1].Company)
	assert.Equal(t, "2018 - 2021", got.Experience[1].Date)

	require.Len(t, got.Education, 1)
	assert.Equal(t, Education{Degree: "BSc Computer Science", Institution: "State University", Date: "2018"}, got.Education[0])
}

func docxWithLines(t *testing.T, lines ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, l := range lines {
		body.WriteString(`<w:p><w:r><w:t>` + l + `</w:t></w:r></w:p>`)
	}
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractingParserDOCX(t *testing.T) {
	data := docxWithLines(t, "Jane Smith", "jane.smith@example.com", "Skills", "Go, SQL")

	got, err := ExtractingParser{}.Parse(context.Background(), Document{FileName: "cv.docx", MimeType: "application/zip", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "jane.smith@example.com", got.Email)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
}

func TestExtractingParserAmbiguous(t *testing.T) {
	data := docxWithLines(t, "Skills", "Go, SQL")

	_, err := ExtractingParser{}.Parse(context.Background(), Document{FileName: "cv.docx", Data: data})
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected ParseError, got %v", err)
	assert.Equal(t, KindExtractionAmbiguous, perr.Kind)
}

func TestExtractingParserUnreadable(t *testing.T) {
	_, err := ExtractingParser{}.Parse(context.Background(), Document{FileName: "cv.txt", MimeType: "text/plain", Data: []byte("hello")})
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected ParseError, got %v", err)
	assert.Equal(t, KindUnreadableFormat, perr.Kind)
	assert.NotNil(t, errors.Unwrap(perr))
}
