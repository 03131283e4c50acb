package api

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kbukum/wonderwords/transcript"
	"github.com/kbukum/wonderwords/version"
)

// ToolName is the MCP tool exposing transcript resolution.
const ToolName = "get_transcript"

// GetTranscriptInput is the input of the get_transcript tool.
type GetTranscriptInput struct {
	VideoID   string   `json:"video_id" jsonschema:"YouTube video id, for example dQw4w9WgXcQ"`
	Languages []string `json:"languages,omitempty" jsonschema:"preferred language codes in priority order, default en"`
}

// NewMCPServer creates an MCP server with the get_transcript tool
// registered. A failed resolution is a tool error carrying the envelope
// message.
func (h *Handler) NewMCPServer(name string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version.Get().Version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Fetch the transcript of a YouTube video as plain text. Preferred languages are tried in order, manual captions before auto-generated ones; when none match, the first available track is returned.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GetTranscriptInput) (*mcp.CallToolResult, *transcript.Result, error) {
		res, err := h.resolver.Execute(ctx, transcript.Request{VideoID: input.VideoID, Languages: input.Languages})
		if err != nil {
			return nil, nil, stderrors.New(transcript.Fail(err).Error)
		}
		return nil, res, nil
	})
	return server
}

// MCPHandler serves server over the streamable HTTP transport.
func MCPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}
