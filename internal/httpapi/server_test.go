// ABOUTME: Tests for the HTTP boundary using httptest and gin test mode
// ABOUTME: Covers the end-to-end examples, boundary errors, status mapping, and 404/405

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harper/tag-router/internal/config"
	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/logging"
	"github.com/harper/tag-router/internal/metrics"
	"github.com/harper/tag-router/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingHandler struct {
	calls int32
	reply string
	err   error
}

func (h *countingHandler) Generate(context.Context, string) (string, error) {
	atomic.AddInt32(&h.calls, 1)
	return h.reply, h.err
}

func newTestServer(handlers map[models.Tag]core.Handler) *Server {
	logger := logging.Discard()
	m := metrics.New()
	d := core.NewDispatcher(handlers, core.WithLogger(logger), core.WithMetrics(m))
	return NewServer(d, m, logger)
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	out := map[string]string{}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHandle_IoMissingCredential(t *testing.T) {
	s := newTestServer(core.NewHandlers(&config.Config{BackendTimeout: time.Second}))

	rec, body := do(t, s, http.MethodPost, "/handle", `{"msg": "[Io] what happened to issue 12?"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Io", body["tag"])
	assert.Equal(t, "Error processing request for [Io]: Io is not configured: missing credential: GEMINI_API_KEY is not set", body["reply"])
}

func TestHandle_RoutedSuccess(t *testing.T) {
	io := &countingHandler{reply: "From the archive."}
	s := newTestServer(map[models.Tag]core.Handler{models.TagIo: io})

	rec, body := do(t, s, http.MethodPost, "/handle", `{"msg": "[io] origins?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "From the archive.", body["reply"])
	assert.Equal(t, "Io", body["tag"])
	assert.Equal(t, int32(1), io.calls)
}

func TestHandle_Unrouted(t *testing.T) {
	io := &countingHandler{}
	s := newTestServer(map[models.Tag]core.Handler{models.TagIo: io})

	rec, body := do(t, s, http.MethodPost, "/handle", `{"msg": "hello there"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, core.UnroutedReply, body["reply"])
	_, hasTag := body["tag"]
	assert.False(t, hasTag)
	assert.Equal(t, int32(0), io.calls)
}

func TestHandle_StubCopilot(t *testing.T) {
	s := newTestServer(core.NewHandlers(&config.Config{BackendTimeout: time.Second}))

	rec, body := do(t, s, http.MethodPost, "/handle", `{"msg": "[Copilot] anything"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Copilot was called.", body["reply"])
}

func TestHandle_BackendFailureIsBadGateway(t *testing.T) {
	lumo := &countingHandler{err: models.NewTransportError("Lumo", errors.New("connection refused"))}
	s := newTestServer(map[models.Tag]core.Handler{models.TagLumo: lumo})

	rec, body := do(t, s, http.MethodPost, "/handle", `{"msg": "[Lumo] status"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, body["reply"], "connection refused")
	assert.Equal(t, int32(1), lumo.calls)
}

func TestHandle_InputErrors(t *testing.T) {
	oversized := `{"msg": "[Io] ` + strings.Repeat("a", MaxBodyBytes) + `"}`

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"no msg key", `{}`, http.StatusBadRequest, ReplyMissingMsg},
		{"empty msg", `{"msg": ""}`, http.StatusBadRequest, ReplyMissingMsg},
		{"whitespace msg", `{"msg": "   "}`, http.StatusBadRequest, ReplyMissingMsg},
		{"null msg", `{"msg": null}`, http.StatusBadRequest, ReplyMissingMsg},
		{"numeric msg", `{"msg": 12}`, http.StatusBadRequest, ReplyBadMsgType},
		{"no body", ``, http.StatusBadRequest, ReplyNoJSON},
		{"invalid json", `{"msg":`, http.StatusBadRequest, ReplyNoJSON},
		{"json array", `["[Io] hi"]`, http.StatusBadRequest, ReplyNoJSON},
		{"json null", `null`, http.StatusBadRequest, ReplyNoJSON},
		{"trailing garbage", `{"msg": "[Io] a"} trailing-garbage`, http.StatusBadRequest, ReplyNoJSON},
		{"second object", `{"msg": "[Io] a"}{"msg": "[Io] b"}`, http.StatusBadRequest, ReplyNoJSON},
		{"oversized body", oversized, http.StatusRequestEntityTooLarge, ReplyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io := &countingHandler{}
			s := newTestServer(map[models.Tag]core.Handler{models.TagIo: io})

			rec, body := do(t, s, http.MethodPost, "/handle", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, body["reply"])
			assert.Equal(t, int32(0), io.calls)
		})
	}
}

func TestHandle_TrailingWhitespaceAccepted(t *testing.T) {
	io := &countingHandler{reply: "ok"}
	s := newTestServer(map[models.Tag]core.Handler{models.TagIo: io})

	rec, body := do(t, s, http.MethodPost, "/handle", "{\"msg\": \"[Io] a\"}\n  ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["reply"])
	assert.Equal(t, int32(1), io.calls)
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil)

	rec, body := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AI Message Router is running", body["message"])
}

func TestNotFound(t *testing.T) {
	s := newTestServer(nil)

	rec, body := do(t, s, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Contains(t, body["reply"], "POST /handle")
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(nil)

	rec, body := do(t, s, http.MethodGet, "/handle", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", body["error"])
	assert.Equal(t, "This endpoint only accepts POST requests.", body["reply"])
}

func TestRequestID(t *testing.T) {
	s := newTestServer(nil)

	rec, _ := do(t, s, http.MethodGet, "/health", "")
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "caller-supplied", rec.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(map[models.Tag]core.Handler{models.TagCopilot: core.StubHandler{Reply: "stub"}})

	do(t, s, http.MethodPost, "/handle", `{"msg": "[Copilot] x"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `router_requests_total{outcome="success",tag="Copilot"} 1`)
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	s := newTestServer(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "127.0.0.1:0", time.Minute)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
