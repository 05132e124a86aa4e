package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat is returned for anything other than PDF or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// TextFromBytes extracts plain text from an in-memory PDF or DOCX payload.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalized := NormalizeMimeType(mimeType, fileName, data); normalized {
	case MimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf: %w", err)
		}
		return text, nil
	case MimeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("extract docx: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, normalized)
	}
}

func extractPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// NormalizeMimeType maps a declared content type plus file name to PDF or DOCX when possible.
// Browsers and sniffers often report DOCX as application/zip or octet-stream.
func NormalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimePDF, MimeDOCX:
		return clean
	case "application/zip", "application/octet-stream", "":
	default:
		return clean
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return MimePDF
	}
	if isDOCXArchive(data) {
		return MimeDOCX
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		if clean == "" || clean == "application/octet-stream" {
			return MimePDF
		}
	case ".docx":
		if clean != "application/zip" {
			return MimeDOCX
		}
	}
	if clean == "" {
		return "application/octet-stream"
	}
	return clean
}

func isDOCXArchive(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
