package sessions

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Session // userId -> session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Session),
	}
}

func (r *MemoryRepo) Put(ctx context.Context, s Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[s.UserID] = s.clone()
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[userID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s.clone(), nil
}

func (r *MemoryRepo) Update(ctx context.Context, userID string, fn func(*Session) error) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[userID]
	if !ok {
		return Session{}, ErrNotFound
	}
	s = s.clone()
	if err := fn(&s); err != nil {
		return Session{}, err
	}
	r.data[userID] = s
	return s.clone(), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}
