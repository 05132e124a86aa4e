package documents

import "context"

// Repo persists document metadata. Uploads are append-only per user; the most
// recent one is the current document.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetCurrentByUser(ctx context.Context, userId string) (Document, error)
	Delete(ctx context.Context, id string) error
}
