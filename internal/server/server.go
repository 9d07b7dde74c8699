// Package server exposes the orchestration core over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/triadhq/triad/pkg/ensemble/chat"
	"github.com/triadhq/triad/pkg/ensemble/orchestrate"
	"github.com/triadhq/triad/pkg/ensemble/provider"
)

// Runner is the orchestration capability the HTTP layer depends on.
type Runner interface {
	RunParallel(ctx context.Context, req orchestrate.Request) *orchestrate.Result
	RunPipeline(ctx context.Context, req orchestrate.Request) *orchestrate.Result
}

// Options configures a Server.
type Options struct {
	// Logger receives request logs. A default logger is used when nil.
	Logger *logrus.Logger

	// StaticDir, when non-empty, is served for routes the API does not
	// claim.
	StaticDir string
}

// Server wires the gin engine to the orchestration core.
type Server struct {
	runner   Runner
	registry *provider.Registry
	log      *logrus.Logger
	engine   *gin.Engine
}

// New builds the server and its routes.
func New(runner Runner, registry *provider.Registry, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		runner:   runner,
		registry: registry,
		log:      log,
		engine:   engine,
	}

	engine.Use(s.requestLogger(), gin.Recovery(), corsMiddleware())

	api := engine.Group("/api")
	api.POST("/ask", s.handleAsk)
	api.GET("/providers", s.handleProviders)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.StaticDir != "" {
		engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(opts.StaticDir))))
	}

	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return errors.Wrap(s.engine.Run(addr), "http server")
}

type askRequest struct {
	Query            string         `json:"query"`
	EnabledProviders []string       `json:"enabledProviders"`
	History          []chat.Message `json:"history"`
	Mode             string         `json:"mode"`
	Pipeline         *pipelineSpec  `json:"pipeline"`
	Summarizer       string         `json:"summarizer"`
}

type pipelineSpec struct {
	Retriever  string `json:"retriever"`
	Summarizer string `json:"summarizer"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Wrap(err, "decode request").Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	run := orchestrate.Request{
		Query:      req.Query,
		History:    req.History,
		Enabled:    req.EnabledProviders,
		Summarizer: req.Summarizer,
	}

	var result *orchestrate.Result
	if req.Mode == "pipeline" {
		if req.Pipeline != nil {
			run.Retriever = req.Pipeline.Retriever
			if req.Pipeline.Summarizer != "" {
				run.Summarizer = req.Pipeline.Summarizer
			}
		}
		result = s.runner.RunPipeline(c.Request.Context(), run)
	} else {
		result = s.runner.RunParallel(c.Request.Context(), run)
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": s.registry.AllInfo(),
		"default":   s.registry.Default(),
	})
}

// requestLogger tags each request with an ID and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start),
		}).Info("request handled")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
