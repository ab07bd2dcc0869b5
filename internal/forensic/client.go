package forensic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultAPIBase   = "https://generativelanguage.googleapis.com"
	defaultModel     = "gemini-2.5-flash"
	defaultUserAgent = "earshot/0.1"
)

// instructionTemplate is the fixed system instruction describing the
// forensic criteria. The %s is the target language of the recording.
const instructionTemplate = `You are a forensic audio analyst. Examine the attached recording and decide whether the speech is a live human recording or synthetic (AI-generated). Weigh the spectral signature, prosody and breathing patterns, and artifacts typical of known synthesis engines. The speaker uses %s. Respond only with the JSON report.`

// Analyzer classifies audio clips. Implemented by *Client; the interface
// exists so the UI can be exercised against a stub engine.
type Analyzer interface {
	Analyze(ctx context.Context, audio []byte, mimeType, language string) (*Verdict, error)
}

var _ Analyzer = (*Client)(nil)

// Client talks to the multimodal inference engine.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	model     string
	apiKey    string
	userAgent string
}

// NewClient builds a Client for the given API base URL and model. Empty
// values fall back to the engine defaults.
func NewClient(apiBase, model, apiKey string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		model:     model,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
	}, nil
}

// Analyze ships the clip to the engine and decodes the structured verdict.
// Each call is a fresh single attempt: no retry, no caching, and the engine
// may return a different verdict for the same bytes.
func (c *Client) Analyze(ctx context.Context, audio []byte, mimeType, language string) (*Verdict, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(language) == "" {
		language = "English"
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{
				MIMEType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(audio),
			}},
			{Text: fmt.Sprintf(instructionTemplate, language)},
		}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   verdictSchema(),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	rel := &url.URL{Path: fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return decodeVerdict(raw)
}

// verdictWire uses pointer fields so absent report keys are detectable.
type verdictWire struct {
	Classification *string  `json:"classification"`
	Confidence     *float64 `json:"confidence"`
	Language       *string  `json:"language"`
	Reasoning      *string  `json:"reasoning"`
	SpectralNotes  *string  `json:"spectralNotes"`
}

func decodeVerdict(raw []byte) (*Verdict, error) {
	var reply generateResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, &InvalidReportError{Reason: "reply is not JSON"}
	}
	text := reply.reportText()
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidReportError{Reason: "reply carries no report text"}
	}

	var wire verdictWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, &InvalidReportError{Reason: "report text is not JSON"}
	}

	var missing []string
	if wire.Classification == nil {
		missing = append(missing, "classification")
	}
	if wire.Confidence == nil {
		missing = append(missing, "confidence")
	}
	if wire.Language == nil {
		missing = append(missing, "language")
	}
	if wire.Reasoning == nil {
		missing = append(missing, "reasoning")
	}
	if wire.SpectralNotes == nil {
		missing = append(missing, "spectralNotes")
	}
	if len(missing) > 0 {
		return nil, &InvalidReportError{Reason: "report is missing " + strings.Join(missing, ", ")}
	}

	if *wire.Classification != ClassificationHuman && *wire.Classification != ClassificationAIGenerated {
		return nil, &InvalidReportError{Reason: fmt.Sprintf("unknown classification %q", *wire.Classification)}
	}
	if *wire.Confidence < 0 || *wire.Confidence > 1 {
		return nil, &InvalidReportError{Reason: fmt.Sprintf("confidence %v out of range", *wire.Confidence)}
	}

	return &Verdict{
		Classification: *wire.Classification,
		Confidence:     *wire.Confidence,
		Language:       *wire.Language,
		Reasoning:      *wire.Reasoning,
		SpectralNotes:  *wire.SpectralNotes,
	}, nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
