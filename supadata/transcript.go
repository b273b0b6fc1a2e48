package supadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var ErrMissingURL = errors.New("URL is required and must be a string")

var validate = validator.New()

// Validate checks the request before it is sent.
func (r TranscriptRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "URL":
			return ErrMissingURL
		case "Mode":
			return fmt.Errorf("mode must be one of %s, %s or %s (got %q)", ModeNative, ModeGenerate, ModeAuto, r.Mode)
		}
	}

	return err
}

// Query encodes the request as url, lang, text, mode in that order, leaving
// out lang and mode when empty and text when unset.
func (r TranscriptRequest) Query() string {
	var b strings.Builder

	add := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add("url", r.URL)
	if r.Lang != "" {
		add("lang", r.Lang)
	}
	if r.Text != nil {
		add("text", strconv.FormatBool(*r.Text))
	}
	if r.Mode != "" {
		add("mode", r.Mode)
	}

	return b.String()
}

// GetTranscript fetches the transcript for req.URL. The response is a
// *TextTranscript when req.Text is true and a *SegmentedTranscript otherwise.
func (c *Client) GetTranscript(ctx context.Context, req TranscriptRequest) (TranscriptResponse, error) {
	endpoint := c.baseURL + TranscriptPath + "?" + req.Query()

	log.Debug().
		Str("url", req.URL).
		Str("lang", req.Lang).
		Str("mode", req.Mode).
		Bool("text", req.WantsText()).
		Msg("Requesting Supadata transcript")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set(APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, resp.Status, respBody)
		log.Error().
			Int("status", resp.StatusCode).
			Str("error", apiErr.Raw).
			Str("code", apiErr.Code).
			Msg("Supadata API request failed")
		return nil, apiErr
	}

	result, err := decodeTranscript(respBody, req.WantsText())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("url", req.URL).
		Str("lang", result.Language()).
		Msg("Supadata transcript received")

	return result, nil
}

// rawTranscript holds a 2xx body before its content is bound to a variant.
type rawTranscript struct {
	Content        json.RawMessage `json:"content"`
	Lang           string          `json:"lang"`
	AvailableLangs []string        `json:"availableLangs"`
	JobID          string          `json:"jobId"`
}

func decodeTranscript(body []byte, wantsText bool) (TranscriptResponse, error) {
	var raw rawTranscript
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		if raw.JobID != "" {
			return nil, fmt.Errorf("Supadata returned an asynchronous job (%s) instead of a transcript", raw.JobID)
		}
		return nil, errors.New("failed to parse response JSON: transcript content is missing")
	}

	if wantsText {
		t := &TextTranscript{Lang: raw.Lang, AvailableLangs: raw.AvailableLangs}
		if err := json.Unmarshal(raw.Content, &t.Content); err != nil {
			return nil, fmt.Errorf("failed to parse response JSON: %w", err)
		}
		return t, nil
	}

	t := &SegmentedTranscript{Lang: raw.Lang, AvailableLangs: raw.AvailableLangs}
	if err := json.Unmarshal(raw.Content, &t.Content); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return t, nil
}

// newAPIError builds the error for a non-2xx response. status is the full
// status line value, e.g. "502 Bad Gateway".
func newAPIError(statusCode int, status string, body []byte) *APIError {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = errorPayload{
			Error: fmt.Sprintf("HTTP %d: %s", statusCode, reasonPhrase(statusCode, status)),
		}
	}

	raw := payload.Error
	if raw == "" {
		raw = payload.Message
	}
	if raw == "" {
		raw = "Unknown error"
	}

	return &APIError{
		StatusCode: statusCode,
		Code:       payload.Code,
		Raw:        raw,
		Guidance:   guidanceFor(raw),
	}
}

func reasonPhrase(statusCode int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if reason == "" {
		reason = http.StatusText(statusCode)
	}
	return reason
}
