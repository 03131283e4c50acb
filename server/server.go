package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/wonderwords/component"
	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/server/endpoint"
	"github.com/kbukum/wonderwords/server/middleware"
)

// Server is an HTTP server backed by Gin, with a ServeMux in front of it so
// that plain http.Handlers can be mounted on the same port. Middleware is
// applied around the mux and therefore covers both.
type Server struct {
	httpServer  *http.Server
	engine      *gin.Engine
	mux         *http.ServeMux
	config      Config
	log         *logger.Logger
	middlewares []middleware.Middleware
	patterns    []string

	once    sync.Once
	handler http.Handler
	bound   net.Addr
}

// New creates a new Server. Unmatched routes and methods answer with the
// failure envelope.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errors.NotFound("Not found").ToResponse())
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errors.MethodNotAllowed(c.Request.Method).ToResponse())
	})

	mux := http.NewServeMux()
	mux.Handle("/", engine)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
		},
		engine: engine,
		mux:    mux,
		config: cfg,
		log:    log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handle mounts an http.Handler at the given pattern on the root ServeMux.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
	s.patterns = append(s.patterns, pattern)
	s.log.Debug("handler mounted", map[string]interface{}{"pattern": pattern})
}

// Use appends server-level middleware. Must be called before Handler or Start.
func (s *Server) Use(mws ...middleware.Middleware) {
	s.middlewares = append(s.middlewares, mws...)
}

// ApplyMiddleware installs the standard stack: recovery, request id, CORS
// and request logging.
func (s *Server) ApplyMiddleware() {
	s.Use(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.CORS(&s.config.CORS),
		middleware.RequestLogger(s.log),
	)
}

// RegisterDefaultEndpoints registers /health, /info, /version, /livez and /readyz.
func (s *Server) RegisterDefaultEndpoints(serviceName string, checker endpoint.HealthChecker) {
	s.engine.GET("/health", endpoint.Health(serviceName, checker))
	s.engine.GET("/info", endpoint.Info(serviceName))
	s.engine.GET("/version", endpoint.Version())
	s.engine.GET("/livez", endpoint.Liveness(serviceName))
	s.engine.GET("/readyz", endpoint.Readiness(serviceName, checker))
}

// Handler returns the complete handler: middleware around the mux, wrapped
// for HTTP/2 cleartext. It is built once.
func (s *Server) Handler() http.Handler {
	s.once.Do(func() {
		h2s := &http2.Server{
			MaxConcurrentStreams: 250,
			IdleTimeout:          time.Duration(s.config.IdleTimeout) * time.Second,
		}
		s.handler = h2c.NewHandler(middleware.Chain(s.middlewares...)(s.mux), h2s)
	})
	return s.handler
}

// Start binds the port and begins serving. It returns once the listener is
// bound; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer.Handler = s.Handler()

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}
	s.bound = listener.Addr()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", map[string]interface{}{"error": err.Error()})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{"addr": s.bound.String()})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.log.Info("HTTP server shut down")
	return nil
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	if s.bound != nil {
		return s.bound.String()
	}
	return s.httpServer.Addr
}

// Routes lists gin routes followed by mounted handler patterns, sorted by path.
func (s *Server) Routes() []component.Route {
	routes := make([]component.Route, 0, len(s.engine.Routes())+len(s.patterns))
	for _, r := range s.engine.Routes() {
		routes = append(routes, component.Route{Method: r.Method, Path: r.Path})
	}
	for _, p := range s.patterns {
		routes = append(routes, component.Route{Method: "*", Path: p})
	}
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}
