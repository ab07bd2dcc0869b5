package probe

import "encoding/json"

// Status is the lifecycle state of a probe attempt. Within one panel the
// progression is idle -> loading -> {success | error}; the terminal state
// holds until the next manual invocation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Body carries a response payload. The JSON/raw decision is made once at
// parse time and carried through unchanged: JSON is non-nil when the
// payload parsed as JSON, otherwise Text holds the bytes untouched.
type Body struct {
	JSON json.RawMessage
	Text string
}

// IsJSON reports whether the payload parsed as JSON.
func (b Body) IsJSON() bool {
	return b.JSON != nil
}

// String returns the payload for display, exactly as it was captured.
func (b Body) String() string {
	if b.JSON != nil {
		return string(b.JSON)
	}
	return b.Text
}

// Outcome is the terminal record of one probe attempt. StatusCode and
// LatencyMS stay nil when the attempt never produced an HTTP response.
// Headers is only populated by honeypot probes.
type Outcome struct {
	AttemptID  string
	Status     Status
	StatusCode *int
	LatencyMS  *int64
	Headers    map[string]string
	Body       Body
}

func errorBody(msg string) Body {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return Body{JSON: raw}
}

func missingFieldsBody(missing []string) Body {
	raw, _ := json.Marshal(struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}{Error: "missing required fields", Missing: missing})
	return Body{JSON: raw}
}
