package documents

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Document
	byUser map[string][]string // userId -> document ids, oldest first
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Document),
		byUser: make(map[string][]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[doc.ID]; exists {
		return ErrInvalidInput
	}
	r.byID[doc.ID] = doc
	r.byUser[doc.UserID] = append(r.byUser[doc.UserID], doc.ID)
	return nil
}

func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userId string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userId]
	if len(ids) == 0 {
		return Document{}, ErrNotFound
	}
	return r.byID[ids[len(ids)-1]], nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	ids := r.byUser[doc.UserID]
	for i, other := range ids {
		if other == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(r.byUser, doc.UserID)
	} else {
		r.byUser[doc.UserID] = ids
	}
	return nil
}
