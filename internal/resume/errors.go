package resume

import "fmt"

// ParseErrorKind separates documents that cannot be read from documents that were read
// but yielded no usable fields.
type ParseErrorKind string

const (
	KindUnreadableFormat    ParseErrorKind = "unreadable_format"
	KindExtractionAmbiguous ParseErrorKind = "extraction_ambiguous"
)

// ParseError is returned by parsers that inspect document contents.
type ParseError struct {
	Kind ParseErrorKind
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse resume (%s): %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse resume (%s): %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
