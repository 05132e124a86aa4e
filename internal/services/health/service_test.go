package health

import (
	"context"
	"errors"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestStatusWithoutDatabase(t *testing.T) {
	status, ok := NewService(nil, "stub").Status(context.Background())
	if !ok || status["database"] != "memory" || status["parserMode"] != "stub" {
		t.Fatalf("unexpected status %v ok=%v", status, ok)
	}
}

func TestStatusReportsUnreachableDatabase(t *testing.T) {
	status, ok := NewService(fakePinger{err: errors.New("down")}, "extract").Status(context.Background())
	if ok || status["ok"] != false || status["database"] != "unreachable" {
		t.Fatalf("unexpected status %v ok=%v", status, ok)
	}
}

func TestStatusHealthyDatabase(t *testing.T) {
	status, ok := NewService(fakePinger{}, "stub").Status(context.Background())
	if !ok || status["database"] != "ok" {
		t.Fatalf("unexpected status %v ok=%v", status, ok)
	}
}
