package cron

import (
	"context"
	"testing"
)

type stubJob struct {
	name string
}

func (s *stubJob) Name() string              { return s.name }
func (s *stubJob) Run(context.Context) error { return nil }

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	expiry := &stubJob{name: "quote-expiry"}
	fanout := &stubJob{name: "outbox-fanout"}
	registry := NewRegistry(expiry)
	registry.Register(fanout)

	jobs := registry.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0] != expiry || jobs[1] != fanout {
		t.Fatalf("jobs returned out of order")
	}

	jobs[0] = nil
	if registry.Jobs()[0] == nil {
		t.Fatalf("internal job list leaked to caller")
	}
}

func TestRegistryReplacesJobsByName(t *testing.T) {
	original := &stubJob{name: "outbox-fanout"}
	replacement := &stubJob{name: "outbox-fanout"}
	registry := NewRegistry(original, &stubJob{name: "quote-expiry"})
	registry.Register(replacement)

	jobs := registry.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected replacement to keep 2 jobs, got %d", len(jobs))
	}
	if jobs[0] != replacement {
		t.Fatalf("expected replacement job in original slot")
	}
}

func TestRegistryIgnoresNilJobs(t *testing.T) {
	registry := NewRegistry(nil, &stubJob{name: "quote-expiry"})
	registry.Register(nil)
	if len(registry.Jobs()) != 1 {
		t.Fatalf("expected nil jobs to be dropped, got %d", len(registry.Jobs()))
	}
}
