package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"waypoint/internal"
	"waypoint/internal/config"
	"waypoint/ports"
)

// Server represents the web server for the compliance testing API.
type Server struct {
	router *gin.Engine
	reader ports.RosterReader
	cfg    *config.Config
	logger *internal.Logger

	// parseSlots bounds how many uploads are parsed at once. Evaluation
	// itself is stateless and needs no coordination; parsing large files
	// is the only resource worth limiting.
	parseSlots *semaphore.Weighted

	// landingHTML is the usage guide rendered once at startup.
	landingHTML []byte
}

// NewServer creates a new web server instance.
func NewServer(cfg *config.Config, logger *internal.Logger, reader ports.RosterReader) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:      gin.New(),
		reader:      reader,
		cfg:         cfg,
		logger:      logger,
		parseSlots:  semaphore.NewWeighted(cfg.Upload.MaxConcurrentParse),
		landingHTML: markdown.ToHTML(usageGuide, nil, nil),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware.
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(corsMiddleware())
}

// setupRoutes configures the application routes.
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/tests", s.handleListTests)
	s.router.POST("/upload-csv/:test_type", s.handleUpload)

	// The frontend bundle is served from disk when configured; otherwise
	// the landing page is the rendered usage guide.
	if s.cfg.Paths.StaticDir != "" {
		s.router.Static("/app", s.cfg.Paths.StaticDir)
		s.router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/app")
		})
	} else {
		s.router.GET("/", s.handleLanding)
	}
}

// Start starts the web server.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting Waypoint compliance API on http://%s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// corsMiddleware allows cross-origin calls from the frontend.
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

// requestIDMiddleware tags every response with a request id for log
// correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLanding(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.landingHTML)
}
