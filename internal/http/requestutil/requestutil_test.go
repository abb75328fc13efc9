package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	valid := []string{"abc123", "req-42", "trace_id-X", "a"}
	for _, id := range valid {
		if got := SanitizeRequestID(id); got != id {
			t.Fatalf("expected %q to survive sanitization, got %q", id, got)
		}
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	invalid := []string{"", "has space", "semi;colon", "<script>", string(make([]byte, 65))}
	for _, id := range invalid {
		got := SanitizeRequestID(id)
		if got == id || got == "" {
			t.Fatalf("expected replacement for %q, got %q", id, got)
		}
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		if id == "" {
			t.Fatal("empty request id")
		}
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/matches/today", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}

func TestClientIPNilRequest(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}
}
