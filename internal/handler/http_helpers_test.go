package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, `nope "quoted"`)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope \"quoted\""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestHumanBytes(t *testing.T) {
	if got := humanBytes(15 << 20); got != "15MB" {
		t.Fatalf("expected 15MB, got %s", got)
	}
	if got := humanBytes(1000); got != "1000 bytes" {
		t.Fatalf("expected 1000 bytes, got %s", got)
	}
}
