package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/transcript"
	"github.com/kbukum/wonderwords/version"
)

// CORS headers attached by the bindings that do not run behind the server
// middleware.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Info describes the service in index and health responses.
type Info struct {
	// Service is the display name, e.g. "WonderWords Transcript API".
	Service string
	// Method names the active backend.
	Method string
}

// Handler serves transcript requests through every binding.
type Handler struct {
	resolver transcript.Resolver
	info     Info
	log      *logger.Logger
}

// NewHandler creates a Handler backed by resolver.
func NewHandler(resolver transcript.Resolver, info Info, log *logger.Logger) *Handler {
	if info.Method == "" {
		info.Method = resolver.Name()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{resolver: resolver, info: info, log: log.WithComponent("api")}
}

// RegisterRoutes adds the gin routes: the transcript route, the index at
// / and /api, and /api/health.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/transcript/:video_id", h.transcript)
	r.GET("/", h.index)
	r.GET("/api", h.index)
	r.GET("/api/health", h.health)
}

func (h *Handler) transcript(c *gin.Context) {
	req := transcript.Request{
		VideoID:   c.Param("video_id"),
		Languages: languagesFrom(c.Request.URL.Query()),
	}
	res, err := h.resolver.Execute(c.Request.Context(), req)
	c.JSON(envelope(res, err))
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, h.indexBody())
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"service": h.info.Service,
		"version": version.Get().Version,
		"method":  h.info.Method,
	})
}

func (h *Handler) indexBody() gin.H {
	return gin.H{
		"service": h.info.Service,
		"version": version.Get().Version,
		"status":  "running",
		"endpoints": gin.H{
			"transcript": "/transcript/{video_id}",
			"function":   "/api/transcript?video_id=YOUR_VIDEO_ID",
			"health":     "/api/health",
			"mcp":        "/mcp",
		},
	}
}

// languagesFrom reads "languages" and its alias "lang", each repeated or
// comma separated.
func languagesFrom(q url.Values) []string {
	values := append(append([]string(nil), q["languages"]...), q["lang"]...)
	return transcript.ParseLanguages(values...)
}

func envelope(res *transcript.Result, err error) (int, transcript.Envelope) {
	if err != nil {
		return transcript.StatusCode(err), transcript.Fail(err)
	}
	return http.StatusOK, transcript.Succeed(res)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
