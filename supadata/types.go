package supadata

import (
	"fmt"
	"strings"
)

const (
	ModeNative   = "native"
	ModeGenerate = "generate"
	ModeAuto     = "auto"
)

type TranscriptRequest struct {
	URL  string `validate:"required"`
	Lang string
	// Text selects the plain text shape. Nil leaves the parameter off the query.
	Text *bool
	Mode string `validate:"omitempty,oneof=native generate auto"`
}

// Bool returns a pointer to b, for TranscriptRequest.Text.
func Bool(b bool) *bool {
	return &b
}

// WantsText reports whether the request selects the plain text shape.
func (r TranscriptRequest) WantsText() bool {
	return r.Text != nil && *r.Text
}

// TranscriptResponse is either a *TextTranscript or a *SegmentedTranscript.
type TranscriptResponse interface {
	Language() string
	AvailableLanguages() []string
	transcript()
}

type TextTranscript struct {
	Content        string   `json:"content"`
	Lang           string   `json:"lang"`
	AvailableLangs []string `json:"availableLangs"`
}

type SegmentedTranscript struct {
	Content        []Segment `json:"content"`
	Lang           string    `json:"lang"`
	AvailableLangs []string  `json:"availableLangs"`
}

// Segment is one timed fragment. Offset and Duration are in milliseconds.
type Segment struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Lang     string  `json:"lang"`
}

func (t *TextTranscript) Language() string             { return t.Lang }
func (t *TextTranscript) AvailableLanguages() []string { return t.AvailableLangs }
func (t *TextTranscript) transcript()                  {}

func (t *SegmentedTranscript) Language() string             { return t.Lang }
func (t *SegmentedTranscript) AvailableLanguages() []string { return t.AvailableLangs }
func (t *SegmentedTranscript) transcript()                  {}

// errorPayload is the JSON body Supadata sends with non-2xx responses.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

type APIError struct {
	StatusCode int
	Code       string
	// Raw is the upstream error text before any guidance is added.
	Raw      string
	Guidance string
}

func (e *APIError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("Supadata API error: %s. %s", e.Raw, e.Guidance)
	}
	return fmt.Sprintf("Supadata API error: %s", e.Raw)
}

const (
	planGuidance       = "Your current Supadata plan does not include this request. Upgrade your plan or check billing at https://supadata.ai."
	credentialGuidance = "Check that SUPADATA_API_KEY or the apiKey field in supadata-config.json holds a valid Supadata API key."
	throttleGuidance   = "The Supadata rate limit or quota was reached. Wait before retrying or raise the limits on your plan."
)

// guidanceFor maps well-known upstream error texts to remediation hints.
func guidanceFor(raw string) string {
	text := strings.ToLower(raw)

	switch {
	case strings.Contains(text, "upgrade"):
		return planGuidance
	case strings.Contains(text, "unauthorized"),
		strings.Contains(text, "invalid") && strings.Contains(text, "key"):
		return credentialGuidance
	case strings.Contains(text, "rate limit"),
		strings.Contains(text, "rate-limit"),
		strings.Contains(text, "limit-exceeded"),
		strings.Contains(text, "too many"),
		strings.Contains(text, "quota"):
		return throttleGuidance
	}

	return ""
}
