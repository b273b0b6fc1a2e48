// Package supadata provides a client for the Supadata transcript API.
//
// Basic usage:
//
//	client := supadata.NewClient(apiKey, "", http.Client{})
//
//	resp, err := client.GetTranscript(ctx, supadata.TranscriptRequest{
//		URL:  "https://youtu.be/dQw4w9WgXcQ",
//		Lang: "en",
//		Text: supadata.Bool(true),
//	})
package supadata

import (
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://api.supadata.ai/v1"
	TranscriptPath = "/transcript"
	APIKeyHeader   = "x-api-key"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Supadata client. An empty baseURL selects DefaultBaseURL.
// The HTTP client is used as given; no timeout is added.
func NewClient(apiKey, baseURL string, httpClient http.Client) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &httpClient,
	}
}

// BaseURL returns the API origin the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
