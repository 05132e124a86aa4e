package resume

import (
	"context"
	"fmt"
	"strings"
)

// Mode names the parser implementation in use.
type Mode string

const (
	ModeStub    Mode = "stub"
	ModeExtract Mode = "extract"
)

// Document is the uploaded binary handed to a parser.
type Document struct {
	FileName string
	MimeType string
	Data     []byte
}

// Parser turns an uploaded document into a ParsedResume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (ParsedResume, error)
	Mode() Mode
}

// NewParser returns the parser for the configured mode.
func NewParser(mode string) (Parser, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(mode))) {
	case ModeStub, "":
		return StubParser{}, nil
	case ModeExtract:
		return ExtractingParser{}, nil
	default:
		return nil, fmt.Errorf("unknown parser mode %q", mode)
	}
}
