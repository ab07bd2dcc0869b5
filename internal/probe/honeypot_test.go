package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbeHoneypot_RequiresEndpoint(t *testing.T) {
	c := NewClient()
	out := c.ProbeHoneypot(context.Background(), "  ", "X-Trap", "v")

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error", out.Status)
	}
	if out.StatusCode != nil {
		t.Fatalf("StatusCode = %v, want nil without a network call", out.StatusCode)
	}
	var body struct {
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	if len(body.Missing) != 1 || body.Missing[0] != "endpoint" {
		t.Fatalf("missing = %v, want [endpoint]", body.Missing)
	}
}

func TestProbeHoneypot_SendsDecoyAndCustomHeader(t *testing.T) {
	t.Parallel()

	var gotHeader string
	var gotBody decoyPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Trap-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("X-Trap-Id", "cell-7")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lured":true}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.ProbeHoneypot(context.Background(), server.URL, "X-Trap-Key", "open-sesame")

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", out.Status)
	}
	if gotHeader != "open-sesame" {
		t.Fatalf("X-Trap-Key = %q, want open-sesame", gotHeader)
	}
	if gotBody.Test != decoyMarker {
		t.Fatalf("decoy marker = %q, want %q", gotBody.Test, decoyMarker)
	}
	if _, err := time.Parse(time.RFC3339, gotBody.Timestamp); err != nil {
		t.Fatalf("decoy timestamp %q is not RFC3339: %v", gotBody.Timestamp, err)
	}
	if out.Headers["X-Trap-Id"] != "cell-7" {
		t.Fatalf("Headers = %v, want captured X-Trap-Id", out.Headers)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Fatalf("Headers = %v, want captured Content-Type", out.Headers)
	}
	if !out.Body.IsJSON() || out.Body.String() != `{"lured":true}` {
		t.Fatalf("outcome body = %#v, want the JSON reply", out.Body)
	}
	if out.LatencyMS == nil {
		t.Fatalf("LatencyMS = nil, want a measured latency")
	}
}

func TestProbeHoneypot_EmptyHeaderStillProbes(t *testing.T) {
	t.Parallel()

	var sawTrapHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name := range r.Header {
			if name == "X-Trap-Key" {
				sawTrapHeader = true
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.ProbeHoneypot(context.Background(), server.URL, "", "")

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success without credentials", out.Status)
	}
	if sawTrapHeader {
		t.Fatalf("request carried a trap header, want none")
	}
}

func TestProbeHoneypot_ForbiddenTextPreserved(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Forbidden"))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.ProbeHoneypot(context.Background(), server.URL, "X-Trap-Key", "bad")

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error for 403", out.Status)
	}
	if out.StatusCode == nil || *out.StatusCode != http.StatusForbidden {
		t.Fatalf("StatusCode = %v, want 403", out.StatusCode)
	}
	if out.Body.IsJSON() {
		t.Fatalf("body parsed as JSON, want raw text")
	}
	if out.Body.String() != "Forbidden" {
		t.Fatalf("body = %q, want %q exactly", out.Body.String(), "Forbidden")
	}
}

func TestProbeHoneypot_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	c := NewClient()
	out := c.ProbeHoneypot(context.Background(), endpoint, "", "")

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error", out.Status)
	}
	if out.StatusCode != nil {
		t.Fatalf("StatusCode = %v, want nil", out.StatusCode)
	}
	if out.Headers != nil {
		t.Fatalf("Headers = %v, want nil without a response", out.Headers)
	}
	var body map[string]string
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("outcome body = %v, want the connection error message", body)
	}
}
