package server

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	"github.com/mkurecka/supadata-mcp/supadata"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const Name = "supadata-mcp"

// TranscriptClient is the part of supadata.Client the tool handler needs.
type TranscriptClient interface {
	GetTranscript(ctx context.Context, req supadata.TranscriptRequest) (supadata.TranscriptResponse, error)
}

type Server struct {
	mcp    *mcpserver.MCPServer
	client TranscriptClient
}

// New builds the MCP server. A nil client leaves the server unconfigured:
// it still starts and lists its tool, but every call fails with setup
// instructions.
func New(client TranscriptClient, version string) *Server {
	s := &Server{
		mcp: mcpserver.NewMCPServer(
			Name,
			version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
		client: client,
	}

	s.setupTools()

	return s
}

func (s *Server) setupTools() {
	s.mcp.AddTool(transcriptTool(), s.handleGetTranscript)
}

// Serve speaks MCP over the given streams until in is exhausted or ctx is
// cancelled. Cancellation is a clean shutdown and returns nil.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(log.Logger.With().Str("component", "mcp").Logger(), "", 0))

	log.Info().Str("server", Name).Bool("configured", s.client != nil).Msg("Serving MCP over stdio")

	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) {
		log.Info().Msg("MCP connection closed")
		return nil
	}

	return err
}
