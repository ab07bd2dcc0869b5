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

// decoyMarker is the fixed marker string trap endpoints key on.
const decoyMarker = "honeypot_probe"

type decoyPayload struct {
	Test      string `json:"test"`
	Timestamp string `json:"timestamp"`
}

// ProbeHoneypot POSTs a decoy payload to endpoint with one caller-named
// header attached, and captures the status code, every response header,
// and the body verbatim. Header name and value may be empty so traps can
// be probed without credentials to observe their rejection behavior.
func (c *Client) ProbeHoneypot(ctx context.Context, endpoint, headerName, headerValue string) Outcome {
	out := Outcome{AttemptID: uuid.NewString(), Status: StatusError}

	if strings.TrimSpace(endpoint) == "" {
		out.Body = missingFieldsBody([]string{"endpoint"})
		return out
	}

	body, _ := json.Marshal(decoyPayload{
		Test:      decoyMarker,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		out.Body = errorBody(fmt.Sprintf("build request: %v", err))
		return out
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if headerName != "" {
		httpReq.Header.Set(headerName, headerValue)
	}

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
	out.Headers = flattenHeaders(resp.Header)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		out.Body = errorBody(fmt.Sprintf("read response: %v", err))
		return out
	}

	// Operators need to see exactly what the trap returned, so the body is
	// kept byte-for-byte whether or not it parsed as JSON.
	if json.Valid(raw) {
		out.Body = Body{JSON: json.RawMessage(raw)}
	} else {
		out.Body = Body{Text: string(raw)}
	}

	if code >= 200 && code < 300 {
		out.Status = StatusSuccess
	}
	return out
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}
