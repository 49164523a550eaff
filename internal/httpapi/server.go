// ABOUTME: HTTP boundary for the router: POST /handle, GET /health, GET /metrics
// ABOUTME: Validates the payload, calls the dispatcher, and maps outcomes to statuses
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/metrics"
	"github.com/harper/tag-router/internal/models"
)

// Reply texts for boundary errors
const (
	ReplyNoJSON     = "Error: No JSON data received."
	ReplyMissingMsg = "Error: Missing 'msg' key in data."
	ReplyBadMsgType = "Error: 'msg' must be a string."
	ReplyTooLarge   = "Error: Request body too large."
)

// MaxBodyBytes caps a /handle request body
const MaxBodyBytes = 64 << 10

// WriteTimeoutSlack is added to the backend timeout to get the server write timeout
const WriteTimeoutSlack = 10 * time.Second

// HandleResponse is the body of every /handle response
type HandleResponse struct {
	Reply string `json:"reply"`
	Tag   string `json:"tag,omitempty"`
}

// Server wires the dispatcher into a gin engine
type Server struct {
	dispatcher *core.Dispatcher
	metrics    *metrics.Metrics
	logger     *charmlog.Logger
	engine     *gin.Engine
}

// NewServer builds the engine and registers all routes
func NewServer(dispatcher *core.Dispatcher, m *metrics.Metrics, logger *charmlog.Logger) *Server {
	s := &Server{
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(RequestID(), AccessLog(logger), gin.CustomRecovery(s.handlePanic))

	engine.POST("/handle", BodySizeLimiter(MaxBodyBytes), s.handleMessage)
	engine.GET("/health", s.health)
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}
	engine.NoRoute(s.notFound)
	engine.NoMethod(s.methodNotAllowed)

	s.engine = engine
	return s
}

// Handler exposes the engine for http.Server and tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
// writeTimeout must exceed the backend timeout or slow replies are cut off.
func (s *Server) Run(ctx context.Context, addr string, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       90 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("router listening", "addr", addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

func (s *Server) handleMessage(c *gin.Context) {
	msg, status, problem := parseMessage(c)
	if problem != "" {
		c.JSON(status, HandleResponse{Reply: problem})
		return
	}

	res, err := s.dispatcher.RouteAndDispatch(c.Request.Context(), msg)
	if errors.Is(err, models.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, HandleResponse{Reply: ReplyMissingMsg})
		return
	}

	c.JSON(statusFor(res), HandleResponse{Reply: res.Reply, Tag: string(res.Outcome.Tag)})
}

// parseMessage returns the msg field, or a status and reply text describing why it is unusable.
// The body must hold exactly one JSON object.
func parseMessage(c *gin.Context) (string, int, string) {
	dec := json.NewDecoder(c.Request.Body)

	var payload map[string]json.RawMessage
	if err := dec.Decode(&payload); err != nil || payload == nil {
		if isTooLarge(err) {
			return "", http.StatusRequestEntityTooLarge, ReplyTooLarge
		}
		return "", http.StatusBadRequest, ReplyNoJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if isTooLarge(err) {
			return "", http.StatusRequestEntityTooLarge, ReplyTooLarge
		}
		return "", http.StatusBadRequest, ReplyNoJSON
	}

	raw, ok := payload["msg"]
	if !ok || string(raw) == "null" {
		return "", http.StatusBadRequest, ReplyMissingMsg
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", http.StatusBadRequest, ReplyBadMsgType
	}
	return msg, 0, ""
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// statusFor maps a dispatch result to an HTTP status
func statusFor(res core.Result) int {
	if !res.Failed() {
		return http.StatusOK
	}
	if models.KindOf(res.Err) == models.ErrorKindConfiguration {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AI Message Router is running",
	})
}

func (s *Server) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Endpoint not found",
		"reply": "The requested endpoint does not exist. Use POST /handle to send messages.",
	})
}

func (s *Server) methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error": "Method not allowed",
		"reply": "This endpoint only accepts POST requests.",
	})
}

func (s *Server) handlePanic(c *gin.Context, recovered any) {
	s.logger.Error("panic serving request", "path", c.Request.URL.Path, "panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, HandleResponse{
		Reply: fmt.Sprintf("Server error: %v", recovered),
	})
}
