package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vertexinvest/checkout/internal/domain/model"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
	testhelpers "github.com/vertexinvest/checkout/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAdminRequired(t *testing.T) {
	router := gin.New()
	router.Use(AdminRequired(testhelpers.TokenVerifierStub{}))
	router.GET("/", func(c *gin.Context) {})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	if resp.Header().Get("WWW-Authenticate") == "" {
		t.Fatal("expected WWW-Authenticate challenge")
	}

	router = gin.New()
	router.Use(AdminRequired(testhelpers.TokenVerifierStub{Err: pkgAuth.ErrInvalidToken}))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AdminRequired(testhelpers.TokenVerifierStub{Err: context.DeadlineExceeded}))
	router.GET("/", func(c *gin.Context) {})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var stored model.AdminIdentity
	router = gin.New()
	router.Use(AdminRequired(testhelpers.TokenVerifierStub{Identity: model.AdminIdentity{Subject: "admin"}}))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(AdminContextKey); ok {
			stored = v.(model.AdminIdentity)
		}
		c.Status(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored.Subject != "admin" {
		t.Fatalf("expected admin identity in context, got %+v", stored)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Basic abc")
	if token := extractToken(c); token != "" {
		t.Fatalf("expected basic auth to be ignored, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer ")
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty bearer to be ignored, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest(1 << 10))
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed gzip, got %d", resp.Code)
	}
}

type logCapture struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (l *logCapture) handler() slog.Handler {
	return slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			l.mu.Lock()
			l.levels = append(l.levels, a.Value.Any().(slog.Level))
			l.mu.Unlock()
		}
		return a
	}})
}

func TestRequestLogger(t *testing.T) {
	capture := &logCapture{}
	logger := slog.New(capture.handler())

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	if len(capture.levels) != len(want) {
		t.Fatalf("expected %d log records, got %d", len(want), len(capture.levels))
	}
	for i := range want {
		if capture.levels[i] != want[i] {
			t.Errorf("record %d: expected level %s, got %s", i, want[i], capture.levels[i])
		}
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://vertex.example"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://vertex.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://vertex.example" {
		t.Fatalf("expected origin to be echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected unknown origin to be refused, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://vertex.example")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

type observedRequest struct {
	method, path string
	code         int
}

type requestObserverStub struct {
	observed []observedRequest
}

func (s *requestObserverStub) ObserveRequest(method, path string, code int, _ time.Duration) {
	s.observed = append(s.observed, observedRequest{method: method, path: path, code: code})
}

func TestMetrics(t *testing.T) {
	observer := &requestObserverStub{}
	router := gin.New()
	router.Use(Metrics(observer))
	router.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if len(observer.observed) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(observer.observed))
	}
	if got := observer.observed[0]; got.path != "/orders/:id" || got.code != http.StatusOK || got.method != http.MethodGet {
		t.Fatalf("unexpected observation %+v", got)
	}
	if got := observer.observed[1]; got.path != "unmatched" || got.code != http.StatusNotFound {
		t.Fatalf("unexpected observation for unmatched route %+v", got)
	}
	if strings.Contains(observer.observed[0].path, "abc") {
		t.Fatal("expected route template instead of raw path")
	}
}

func TestDecompressRequestCapsInflatedBody(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(bytes.Repeat([]byte("a"), 64<<10))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest(1 << 10))
	var readErr error
	var read int
	router.POST("/", func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		read, readErr = len(data), err
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	if !errors.As(readErr, &maxErr) {
		t.Fatalf("expected max bytes error, got %v", readErr)
	}
	if read > 1<<10 {
		t.Fatalf("read %d bytes past the limit", read)
	}
}
