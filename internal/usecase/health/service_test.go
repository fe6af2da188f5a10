package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockBreaker struct {
	open bool
}

func (m *mockBreaker) Open() bool { return m.open }

// --- Tests ---

func TestCheck(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name    string
		db      error
		storage StoragePinger
		breaker BreakerProbe
		want    Status
		checks  map[string]CheckResult
	}{
		{
			name:    "all healthy",
			storage: &mockPinger{},
			breaker: &mockBreaker{},
			want:    Healthy,
			checks:  map[string]CheckResult{"database": CheckOK, "object_storage": CheckOK, "store_breaker": CheckOK},
		},
		{
			name:   "database only",
			want:   Healthy,
			checks: map[string]CheckResult{"database": CheckOK},
		},
		{
			name:    "database down",
			db:      down,
			storage: &mockPinger{},
			want:    Unhealthy,
			checks:  map[string]CheckResult{"database": CheckError, "object_storage": CheckOK},
		},
		{
			name:    "storage down",
			storage: &mockPinger{err: down},
			want:    Degraded,
			checks:  map[string]CheckResult{"database": CheckOK, "object_storage": CheckError},
		},
		{
			name:    "breaker open",
			breaker: &mockBreaker{open: true},
			want:    Degraded,
			checks:  map[string]CheckResult{"database": CheckOK, "store_breaker": CheckOpen},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(&mockPinger{err: tc.db}, tc.storage, tc.breaker).Check(context.Background())

			if r.Status != tc.want {
				t.Errorf("expected %q, got %q", tc.want, r.Status)
			}
			if len(r.Checks) != len(tc.checks) {
				t.Fatalf("expected checks %v, got %v", tc.checks, r.Checks)
			}
			for k, v := range tc.checks {
				if r.Checks[k] != v {
					t.Errorf("check %s: expected %q, got %q", k, v, r.Checks[k])
				}
			}
		})
	}
}
