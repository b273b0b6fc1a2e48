package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkurecka/supadata-mcp/supadata"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
)

var ErrNotConfigured = errors.New("Supadata API not configured. Set the SUPADATA_API_KEY environment variable or create supadata-config.json with your API key.")

// handleGetTranscript never returns a Go error: every failure is reported as
// an error-flagged tool result.
func (s *Server) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()

	text, err := s.getTranscript(ctx, callID, request)
	if err != nil {
		log.Error().
			Err(err).
			Str("call_id", callID).
			Str("tool", request.Params.Name).
			Msg("Tool call failed")
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) getTranscript(ctx context.Context, callID string, request mcp.CallToolRequest) (string, error) {
	req, err := parseTranscriptRequest(request)
	if err != nil {
		return "", err
	}

	if s.client == nil {
		return "", ErrNotConfigured
	}

	if err := req.Validate(); err != nil {
		return "", err
	}

	log.Info().
		Str("call_id", callID).
		Str("url", req.URL).
		Str("lang", req.Lang).
		Str("mode", req.Mode).
		Bool("text", req.WantsText()).
		Msg("Fetching transcript")

	// The upstream call runs to completion even if the caller goes away.
	result, err := s.client.GetTranscript(context.WithoutCancel(ctx), req)
	if err != nil {
		return "", err
	}

	return FormatTranscript(result)
}

// parseTranscriptRequest applies the schema defaults: text=false, mode=auto.
func parseTranscriptRequest(request mcp.CallToolRequest) (supadata.TranscriptRequest, error) {
	args := request.GetArguments()

	url, ok := args["url"].(string)
	if !ok || url == "" {
		return supadata.TranscriptRequest{}, supadata.ErrMissingURL
	}

	var lang string
	if raw, present := args["lang"]; present && raw != nil {
		l, ok := raw.(string)
		if !ok {
			return supadata.TranscriptRequest{}, fmt.Errorf("lang must be a string (got %v)", raw)
		}
		lang = l
	}

	text := false
	if raw, present := args["text"]; present && raw != nil {
		b, ok := raw.(bool)
		if !ok {
			return supadata.TranscriptRequest{}, fmt.Errorf("text must be a boolean (got %v)", raw)
		}
		text = b
	}

	mode := supadata.ModeAuto
	if raw, present := args["mode"]; present && raw != nil {
		m, ok := raw.(string)
		if !ok {
			return supadata.TranscriptRequest{}, fmt.Errorf("mode must be a string (got %v)", raw)
		}
		if m != "" {
			mode = m
		}
	}

	return supadata.TranscriptRequest{
		URL:  url,
		Lang: lang,
		Text: supadata.Bool(text),
		Mode: mode,
	}, nil
}
