// Package api exposes the HTTP surface: chat, streaming, search, manual
// indexing, and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coderelay/coderelay/pkg/database"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/gitops"
	"github.com/coderelay/coderelay/pkg/graph"
	"github.com/coderelay/coderelay/pkg/indexing"
	"github.com/coderelay/coderelay/pkg/queue"
	"github.com/coderelay/coderelay/pkg/services"
)

// TurnRunner processes one user message for a conversation. Implemented by
// *agent.Loop.
type TurnRunner interface {
	Run(ctx context.Context, conversationID, userMessage string) string
}

// Server wires the HTTP handlers to their collaborators.
type Server struct {
	db            *database.Client
	conversations *services.ConversationService
	repos         *services.RepositoryService
	hub           *events.Hub
	pool          *queue.Pool
	runner        TurnRunner
	git           *gitops.Runner
	graph         *graph.Store
	indexer       indexing.Service
	logger        *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	conversations *services.ConversationService,
	repos *services.RepositoryService,
	hub *events.Hub,
	pool *queue.Pool,
	runner TurnRunner,
	git *gitops.Runner,
	graphStore *graph.Store,
	indexer indexing.Service,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:            db,
		conversations: conversations,
		repos:         repos,
		hub:           hub,
		pool:          pool,
		runner:        runner,
		git:           git,
		graph:         graphStore,
		indexer:       indexer,
		logger:        logger.With("component", "api"),
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", s.PostChat)
		v1.GET("/chat/conversations", s.ListConversations)
		v1.GET("/chat/:id/history", s.GetHistory)
		v1.GET("/chat/:id/status", s.GetStatus)
		v1.GET("/chat/:id/stream", s.StreamEvents)
		v1.DELETE("/chat/:id", s.DeleteConversation)

		v1.POST("/search", s.Search)
		v1.POST("/search/graph", s.GraphQuery)

		v1.POST("/index/repo", s.IndexRepo)
		v1.GET("/index/:repo_id/status", s.IndexStatus)
	}

	return router
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    dbHealth,
		"queue_depth": s.pool.QueueDepth(),
	})
}
