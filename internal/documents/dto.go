package documents

import (
	"time"

	"resume-insight/internal/resume"
)

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID string    `json:"documentId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	ParserMode string    `json:"parserMode"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadResponse is returned by a successful upload.
type UploadResponse struct {
	SessionID  string              `json:"sessionId"`
	DocumentID string              `json:"documentId"`
	ParserMode string              `json:"parserMode"`
	JobID      string              `json:"jobId"`
	Resume     resume.ParsedResume `json:"resume"`
	Document   DocumentResponse    `json:"document"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
		SizeBytes:  doc.SizeBytes,
		ParserMode: doc.ParserMode,
		UploadedAt: doc.CreatedAt,
	}
}

func toUploadResponse(res UploadResult) UploadResponse {
	return UploadResponse{
		SessionID:  res.Session.ID,
		DocumentID: res.Document.ID,
		ParserMode: res.Document.ParserMode,
		JobID:      res.Session.JobID,
		Resume:     res.Session.Resume.Normalize(),
		Document:   toResponse(res.Document),
	}
}
