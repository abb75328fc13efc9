package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderProviderStats(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("openmeteo", 120*time.Millisecond, nil)
	rec.RecordProviderAttempt("openmeteo", 80*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("openmeteo"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("openmeteo"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("openmeteo"); got != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms, got %v", got)
	}
}

func TestRecorderResolveFailures(t *testing.T) {
	rec := NewRecorder()
	rec.RecordResolveFailure(ResolveFailureConfiguration)
	rec.RecordResolveFailure(ResolveFailureConfiguration)
	rec.RecordResolveFailure(ResolveFailureValidation)

	if got := rec.ResolveFailures(ResolveFailureConfiguration); got != 2 {
		t.Fatalf("expected 2 configuration failures, got %d", got)
	}
	if got := rec.ResolveFailures(ResolveFailureValidation); got != 1 {
		t.Fatalf("expected 1 validation failure, got %d", got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Second, nil)
	rec.RecordResolveFailure("configuration")
	rec.RecordHTTPRequest("GET", "/matches/today", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	if got := rec.ProviderCalls("x"); got != 0 {
		t.Fatalf("expected 0 from nil recorder, got %d", got)
	}
}

func TestRecorderUnknownProvider(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("never-seen"); snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestSetupDisabledReturnsWorkingRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	rec.RecordProviderAttempt("fixture", time.Millisecond, nil)
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
}

func TestSetupEnabledBuildsHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	rec.RecordHTTPRequest("GET", "/matches/today", 200, 5*time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, errors.New("cycle failed"))
}
