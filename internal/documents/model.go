package documents

import "time"

// Document represents an uploaded résumé file owned by a user.
type Document struct {
	ID         string
	UserID     string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	ParserMode string
	CreatedAt  time.Time
}
