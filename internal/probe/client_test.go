package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
)

func validRequest(endpoint string) Request {
	return Request{
		Endpoint:    endpoint,
		AuthValue:   "key-123",
		Language:    "English",
		AudioFormat: "audio/mpeg",
		AudioBase64: "AAAA",
	}
}

func TestProbe_MissingFieldsShortCircuit(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.Probe(context.Background(), Request{})

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error", out.Status)
	}
	if out.StatusCode != nil || out.LatencyMS != nil {
		t.Fatalf("outcome = %#v, want no HTTP status or latency without a network call", out)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}

	var body struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	want := []string{"endpoint", "authValue", "language", "audioFormat", "audioBase64"}
	if !reflect.DeepEqual(body.Missing, want) {
		t.Fatalf("missing = %v, want %v", body.Missing, want)
	}
}

func TestProbe_MissingFieldsListsOnlyEmptyOnes(t *testing.T) {
	c := NewClient()
	req := validRequest("http://127.0.0.1:1")
	req.AuthValue = " "
	req.AudioBase64 = ""

	out := c.Probe(context.Background(), req)
	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error", out.Status)
	}
	var body struct {
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	want := []string{"authValue", "audioBase64"}
	if !reflect.DeepEqual(body.Missing, want) {
		t.Fatalf("missing = %v, want %v", body.Missing, want)
	}
}

func TestProbe_SuccessAndExactWireFormat(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transcript":"hello"}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.Probe(context.Background(), validRequest(server.URL))

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", out.Status)
	}
	if out.StatusCode == nil || *out.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %v, want 200", out.StatusCode)
	}
	if out.LatencyMS == nil || *out.LatencyMS < 0 {
		t.Fatalf("LatencyMS = %v, want a measured latency", out.LatencyMS)
	}
	if out.AttemptID == "" {
		t.Fatalf("AttemptID is empty")
	}
	if gotAuth != "key-123" {
		t.Fatalf("x-api-key = %q, want key-123", gotAuth)
	}

	// The field names are the tested contract and must survive byte-exact.
	want := map[string]any{
		"Language":            "English",
		"Audio Format":        "audio/mpeg",
		"Audio Base64 Format": "AAAA",
	}
	if !reflect.DeepEqual(gotBody, want) {
		t.Fatalf("wire body = %v, want %v", gotBody, want)
	}

	if !out.Body.IsJSON() || out.Body.String() != `{"transcript":"hello"}` {
		t.Fatalf("outcome body = %#v, want the JSON reply", out.Body)
	}
}

func TestProbe_NonJSONReplyWrappedVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("all systems nominal"))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.Probe(context.Background(), validRequest(server.URL))

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success despite non-JSON body", out.Status)
	}
	var body map[string]string
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	if body["response"] != "all systems nominal" {
		t.Fatalf("response = %q, want the raw text verbatim", body["response"])
	}
}

func TestProbe_Non2xxIsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream down"}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	out := c.Probe(context.Background(), validRequest(server.URL))

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error for 502", out.Status)
	}
	if out.StatusCode == nil || *out.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %v, want 502", out.StatusCode)
	}
	if !out.Body.IsJSON() {
		t.Fatalf("outcome body = %#v, want the JSON error payload", out.Body)
	}
}

func TestProbe_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	c := NewClient()
	out := c.Probe(context.Background(), validRequest(endpoint))

	if out.Status != StatusError {
		t.Fatalf("Status = %q, want error", out.Status)
	}
	if out.StatusCode != nil {
		t.Fatalf("StatusCode = %v, want nil without a response", out.StatusCode)
	}
	var body map[string]string
	if err := json.Unmarshal(out.Body.JSON, &body); err != nil {
		t.Fatalf("outcome body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("outcome body = %v, want the transport error message", body)
	}
}
