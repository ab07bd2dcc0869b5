package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	authHeader       = "x-api-key"
	defaultUserAgent = "earshot/0.1"
)

// Request carries the caller-supplied fields for a generic endpoint probe.
// It is owned by the caller and may be edited freely between attempts.
type Request struct {
	Endpoint    string
	AuthValue   string
	Language    string
	AudioFormat string
	AudioBase64 string
}

// probePayload is the exact wire shape third-party endpoints are tested
// against. The field names, spaces included, must not change.
type probePayload struct {
	Language    string `json:"Language"`
	AudioFormat string `json:"Audio Format"`
	AudioBase64 string `json:"Audio Base64 Format"`
}

// Client issues single-shot endpoint probes. The zero http.Client timeout
// is deliberate: whatever the transport defaults to is the contract, and
// the operator decides when to give up.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds a probe client.
func NewClient() *Client {
	return &Client{
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
}

func (r Request) missingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Endpoint) == "" {
		missing = append(missing, "endpoint")
	}
	if strings.TrimSpace(r.AuthValue) == "" {
		missing = append(missing, "authValue")
	}
	if strings.TrimSpace(r.Language) == "" {
		missing = append(missing, "language")
	}
	if strings.TrimSpace(r.AudioFormat) == "" {
		missing = append(missing, "audioFormat")
	}
	if strings.TrimSpace(r.AudioBase64) == "" {
		missing = append(missing, "audioBase64")
	}
	return missing
}

// Probe POSTs the contract payload to req.Endpoint and resolves every
// failure mode into the returned outcome. It never returns a Go error:
// endpoints under test are often deliberately broken, and a broken reply
// is a reportable result, not a client failure.
func (c *Client) Probe(ctx context.Context, req Request) Outcome {
	out := Outcome{AttemptID: uuid.NewString(), Status: StatusError}

	if missing := req.missingFields(); len(missing) > 0 {
		out.Body = missingFieldsBody(missing)
		return out
	}

	body, err := json.Marshal(probePayload{
		Language:    req.Language,
		AudioFormat: req.AudioFormat,
		AudioBase64: req.AudioBase64,
	})
	if err != nil {
		out.Body = errorBody(fmt.Sprintf("encode payload: %v", err))
		return out
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Endpoint, bytes.NewReader(body))
	if err != nil {
		out.Body = errorBody(fmt.Sprintf("build request: %v", err))
		return out
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(authHeader, req.AuthValue)
	httpReq.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		out.Body = errorBody(err.Error())
		return out
	}
	defer func() { _ = resp.Body.Close() }()

	elapsed := time.Since(start).Milliseconds()
	out.LatencyMS = &elapsed
	code := resp.StatusCode
	out.StatusCode = &code

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		out.Body = errorBody(fmt.Sprintf("read response: %v", err))
		return out
	}

	if json.Valid(raw) {
		out.Body = Body{JSON: json.RawMessage(raw)}
	} else {
		// Malformed JSON from the endpoint is a result, not a failure.
		wrapped, _ := json.Marshal(map[string]string{"response": string(raw)})
		out.Body = Body{JSON: wrapped}
	}

	if code >= 200 && code < 300 {
		out.Status = StatusSuccess
	}
	return out
}
