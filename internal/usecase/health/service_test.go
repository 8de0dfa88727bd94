package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["engine"] != CheckOK {
		t.Errorf("expected engine %q, got %q", CheckOK, r.Checks["engine"])
	}
	if r.Checks["source"] != CheckOK {
		t.Errorf("expected source %q, got %q", CheckOK, r.Checks["source"])
	}
}

func TestCheck_EngineError(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("conn refused")}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["engine"] != CheckError {
		t.Errorf("expected engine %q, got %q", CheckError, r.Checks["engine"])
	}
}

func TestCheck_SourceError(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["source"] != CheckError {
		t.Errorf("expected source %q, got %q", CheckError, r.Checks["source"])
	}
}

func TestCheck_NoSource(t *testing.T) {
	svc := New(&mockPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["source"]; ok {
		t.Error("source check should be absent when no change feed is configured")
	}
}
