package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/wonderwords/api"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/server"
	"github.com/kbukum/wonderwords/transcript"
)

type stubTrack struct {
	code string
	text []string
}

func (t stubTrack) LanguageCode() string { return t.code }
func (t stubTrack) Generated() bool      { return false }
func (t stubTrack) Fetch(context.Context) ([]transcript.Fragment, error) {
	out := make([]transcript.Fragment, len(t.text))
	for i, s := range t.text {
		out[i] = transcript.Fragment{Text: s}
	}
	return out, nil
}

// stubSource serves fixed tracks for "dQw4w9WgXcQ", reports captions
// disabled for "disabled" and records the last video id it was asked for.
type stubSource struct {
	lastID string
	calls  int
}

func (s *stubSource) ListTranscripts(_ context.Context, id string) ([]transcript.Track, error) {
	s.lastID = id
	s.calls++
	if id == "disabled" {
		return nil, transcript.ErrTranscriptsDisabled
	}
	return []transcript.Track{
		stubTrack{code: "en", text: []string{"Never", "gonna", "give"}},
		stubTrack{code: "fr", text: []string{"Jamais"}},
	}, nil
}

func newHandler(t *testing.T) (*api.Handler, *stubSource) {
	t.Helper()
	src := &stubSource{}
	svc := transcript.NewService("youtube", src, transcript.Config{Timeout: time.Second}, logger.NewNop())
	return api.NewHandler(svc, api.Info{Service: "WonderWords Transcript API"}, logger.NewNop()), src
}

func newServer(t *testing.T) (http.Handler, *stubSource) {
	t.Helper()
	h, src := newHandler(t)
	cfg := server.Config{}
	cfg.ApplyDefaults()
	s := server.New(cfg, logger.NewNop())
	s.ApplyMiddleware()
	h.RegisterRoutes(s.GinEngine())
	s.Handle("/api/transcript", h.Function())
	return s.Handler(), src
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, http.NoBody))
	var body map[string]any
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	}
	return rr, body
}

func TestGinRoute_Success(t *testing.T) {
	h, _ := newServer(t)
	rr, body := do(t, h, http.MethodGet, "/transcript/dQw4w9WgXcQ")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, map[string]any{
		"success":       true,
		"video_id":      "dQw4w9WgXcQ",
		"language":      "en",
		"text":          "Never gonna give",
		"length":        float64(16),
		"entries_count": float64(3),
	}, body)
}

func TestGinRoute_LanguageParams(t *testing.T) {
	h, _ := newServer(t)
	for _, target := range []string{
		"/transcript/abc?languages=de,fr",
		"/transcript/abc?languages=de&languages=fr",
		"/transcript/abc?lang=fr",
	} {
		_, body := do(t, h, http.MethodGet, target)
		assert.Equal(t, "fr", body["language"], target)
	}
}

func TestGinRoute_Failures(t *testing.T) {
	h, _ := newServer(t)

	rr, body := do(t, h, http.MethodGet, "/transcript/disabled")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"success": false, "error": "Transcripts are disabled for this video"}, body)

	rr, body = do(t, h, http.MethodGet, "/transcript/%20")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing video_id parameter", body["error"])

	rr, body = do(t, h, http.MethodPost, "/transcript/abc")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method POST not allowed", body["error"])

	rr, body = do(t, h, http.MethodGet, "/nothing/here")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found", body["error"])
}

func TestPreflight(t *testing.T) {
	h, src := newServer(t)
	for _, target := range []string{"/transcript/abc", "/api/transcript?video_id=abc"} {
		rr, _ := do(t, h, http.MethodOptions, target)
		assert.Equal(t, http.StatusNoContent, rr.Code, target)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Zero(t, rr.Body.Len())
	}
	assert.Zero(t, src.calls)
}

func TestFunction(t *testing.T) {
	h, src := newHandler(t)
	fn := h.Function()

	rr, body := do(t, fn, http.MethodGet, "/api/transcript?video_id=dQw4w9WgXcQ&languages=fr")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Jamais", body["text"])

	rr, body = do(t, fn, http.MethodGet, "/api/transcript")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing video_id parameter", body["error"])

	rr, body = do(t, fn, http.MethodDelete, "/api/transcript?video_id=abc")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, false, body["success"])

	rr, _ = do(t, fn, http.MethodOptions, "/api/transcript")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, src.calls)
}

func TestFunctionMountedOnServer(t *testing.T) {
	h, src := newServer(t)
	rr, body := do(t, h, http.MethodGet, "/api/transcript?video_id=dQw4w9WgXcQ")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dQw4w9WgXcQ", body["video_id"])
	assert.Equal(t, "dQw4w9WgXcQ", src.lastID)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestIndexAndHealth(t *testing.T) {
	h, _ := newServer(t)

	for _, target := range []string{"/", "/api"} {
		rr, body := do(t, h, http.MethodGet, target)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "running", body["status"])
		assert.Equal(t, "WonderWords Transcript API", body["service"])
		assert.Contains(t, body["endpoints"], "health")
	}

	rr, body := do(t, h, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "youtube", body["method"])
	assert.NotEmpty(t, body["version"])
}

func TestHandleEvent(t *testing.T) {
	h, _ := newHandler(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		event  api.Event
		status int
		want   map[string]any
	}{
		{
			name:   "path parameter",
			event:  api.Event{HTTPMethod: "GET", PathParameters: map[string]string{"video_id": "dQw4w9WgXcQ"}},
			status: 200,
			want:   map[string]any{"language": "en", "success": true},
		},
		{
			name: "query with multi-value languages",
			event: api.Event{
				QueryStringParameters:           map[string]string{"video_id": "abc", "languages": "de"},
				MultiValueQueryStringParameters: map[string][]string{"languages": {"de", "fr"}},
			},
			status: 200,
			want:   map[string]any{"language": "fr", "success": true},
		},
		{
			name:   "missing id",
			event:  api.Event{HTTPMethod: "GET"},
			status: 400,
			want:   map[string]any{"error": "Missing video_id parameter", "success": false},
		},
		{
			name:   "disabled",
			event:  api.Event{HTTPMethod: "GET", QueryStringParameters: map[string]string{"video_id": "disabled"}},
			status: 404,
			want:   map[string]any{"error": "Transcripts are disabled for this video", "success": false},
		},
		{
			name:   "wrong method",
			event:  api.Event{HTTPMethod: "PUT"},
			status: 405,
			want:   map[string]any{"error": "Method PUT not allowed", "success": false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.HandleEvent(ctx, tt.event)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])

			var body map[string]any
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			for k, v := range tt.want {
				assert.Equal(t, v, body[k], k)
			}
		})
	}

	resp := h.HandleEvent(ctx, api.Event{HTTPMethod: "OPTIONS"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestMCPTool(t *testing.T) {
	h, _ := newHandler(t)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := h.NewMCPServer("wonderwords").Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, api.ToolName, tools.Tools[0].Name)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      api.ToolName,
		Arguments: map[string]any{"video_id": "dQw4w9WgXcQ", "languages": []string{"fr", "en"}},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var got transcript.Result
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "fr", got.Language)
	assert.Equal(t, "Jamais", got.Text)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      api.ToolName,
		Arguments: map[string]any{"video_id": "disabled"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Transcripts are disabled for this video", text.Text)
}
