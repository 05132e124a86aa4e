package object

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

const sniffLen = 512

// Sniff reads the leading bytes of r to detect the content type and returns a
// reader that replays them.
func Sniff(r io.Reader) (string, io.Reader, error) {
	var head [sniffLen]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	return contentType, io.MultiReader(bytes.NewReader(head[:n]), r), nil
}
