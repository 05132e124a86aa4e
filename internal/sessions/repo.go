package sessions

import "context"

// Repo persists one session per user.
type Repo interface {
	// Put stores s as the user's session, replacing any previous one.
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, userID string) (Session, error)
	// Update applies fn to the user's session atomically and stores the result.
	Update(ctx context.Context, userID string, fn func(*Session) error) (Session, error)
	Delete(ctx context.Context, userID string) error
}
