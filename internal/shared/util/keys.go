package util

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFileNameLen caps the stored file name in bytes, extension included.
const MaxFileNameLen = 128

var ErrInvalidFileName = errors.New("invalid file name")

// HashUserKey returns a filesystem-safe identifier for an owner ID, used as the
// storage namespace so raw guest ids never appear in object keys.
func HashUserKey(owner string) string {
	sum := sha256.Sum256([]byte(owner))
	return hex.EncodeToString(sum[:])
}

// SanitizeFileName flattens path separators, drops control characters and rejects
// traversal patterns. Long names are cut to MaxFileNameLen keeping the extension.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	if len(s) <= MaxFileNameLen {
		return s, nil
	}

	ext := filepath.Ext(s)
	if len(ext) >= MaxFileNameLen {
		ext = ""
	}
	base := s[:MaxFileNameLen-len(ext)]
	for !utf8.ValidString(base) {
		base = base[:len(base)-1]
	}
	return base + ext, nil
}
