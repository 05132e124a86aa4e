package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	DB         Pinger
	ParserMode string
}

// NewService constructs a new health service. db may be nil when running on memory repos.
func NewService(db Pinger, parserMode string) *Service {
	return &Service{DB: db, ParserMode: parserMode}
}

// Status reports whether the service can take traffic, with per-dependency detail.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{"ok": true, "parserMode": s.ParserMode}
	if s.DB == nil {
		out["database"] = "memory"
		return out, true
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "unreachable"
		return out, false
	}
	out["database"] = "ok"
	return out, true
}
