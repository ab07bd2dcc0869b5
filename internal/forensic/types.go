package forensic

import "strings"

// Classification values the engine is allowed to return.
const (
	ClassificationHuman       = "HUMAN"
	ClassificationAIGenerated = "AI_GENERATED"
)

// Verdict is the structured forensic report produced by the inference
// engine. A verdict is only returned when every field decoded cleanly.
type Verdict struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Language       string  `json:"language"`
	Reasoning      string  `json:"reasoning"`
	SpectralNotes  string  `json:"spectralNotes"`
}

// IsHuman reports whether the engine judged the clip a live recording.
func (v Verdict) IsHuman() bool {
	return v.Classification == ClassificationHuman
}

// Wire shapes for the engine's generateContent endpoint.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// reportText returns the first candidate's text parts joined together.
func (r generateResponse) reportText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// verdictSchema constrains the engine's structured output to the exact
// report shape, with classification limited to the two allowed labels.
func verdictSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"classification": {
				Type: "STRING",
				Enum: []string{ClassificationHuman, ClassificationAIGenerated},
			},
			"confidence": {
				Type:        "NUMBER",
				Description: "Certainty of the classification, 0.0 to 1.0.",
			},
			"language": {Type: "STRING"},
			"reasoning": {
				Type:        "STRING",
				Description: "Short forensic justification for the classification.",
			},
			"spectralNotes": {
				Type:        "STRING",
				Description: "Observations about the clip's spectral signature.",
			},
		},
		Required: []string{"classification", "confidence", "language", "reasoning", "spectralNotes"},
	}
}
