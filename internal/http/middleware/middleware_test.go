package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when missing", "", false},
		{"client value kept", "abc-123", true},
		{"too long replaced", strings.Repeat("x", 65), false},
		{"control chars replaced", "bad\tid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := map[string]string{}
			if tt.header != "" {
				h[RequestIDHeader] = tt.header
			}
			rec := serve(r, http.MethodGet, "/", nil, h)
			got := rec.Header().Get(RequestIDHeader)
			if got != rec.Body.String() {
				t.Errorf("header %q and context %q differ", got, rec.Body.String())
			}
			if tt.keep {
				if got != tt.header {
					t.Errorf("expected %q, got %q", tt.header, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected generated uuid, got %q", got)
			}
		})
	}
}

func TestRequireValidDraftID(t *testing.T) {
	r := gin.New()
	r.GET("/drafts/:id", RequireValidDraftID(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	if rec := serve(r, http.MethodGet, "/drafts/"+uuid.NewString(), nil, nil); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for uuid, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/drafts/42", nil, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-uuid, got %d", rec.Code)
	}
}

func TestLimitConcurrentRequests(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	r := gin.New()
	r.GET("/", LimitConcurrentRequests(1), func(c *gin.Context) {
		entered <- struct{}{}
		<-release
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var first *httptest.ResponseRecorder
	go func() {
		defer wg.Done()
		first = serve(r, http.MethodGet, "/", nil, nil)
	}()
	<-entered

	second := serve(r, http.MethodGet, "/", nil, nil)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 while busy, got %d", second.Code)
	}

	close(release)
	wg.Wait()
	if first.Code != http.StatusOK {
		t.Errorf("expected 200 for first request, got %d", first.Code)
	}
}

func TestRateLimit(t *testing.T) {
	l := NewRateLimiter(1, 2)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	limited := 0
	r := gin.New()
	r.Use(RateLimit(l, func() { limited++ }))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, serve(r, http.MethodGet, "/", nil, nil).Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected burst of 2 then 429, got %v", codes)
	}
	if limited != 1 {
		t.Errorf("expected onLimited once, got %d", limited)
	}

	now = now.Add(time.Second)
	if code := serve(r, http.MethodGet, "/", nil, nil).Code; code != http.StatusOK {
		t.Errorf("expected token refill after 1s, got %d", code)
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	l := NewRateLimiter(10, 10)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(30 * time.Second)
	l.Allow("10.0.0.2")
	now = now.Add(45 * time.Second)

	l.Sweep()
	if l.Len() != 1 {
		t.Errorf("expected one client left, got %d", l.Len())
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	if rec := serve(r, http.MethodPost, "/", strings.NewReader("short"), nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodPost, "/", strings.NewReader("way too long"), nil); rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413 from content length, got %d", rec.Code)
	}

	// Unknown length: the cap applies while reading.
	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("way too long")))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 from capped reader, got %d", rec.Code)
	}
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(RequestID(), AccessLog(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
		c.Status(http.StatusInternalServerError)
	})

	serve(r, http.MethodGet, "/ok", nil, map[string]string{RequestIDHeader: "req-1"})
	serve(r, http.MethodGet, "/bad", nil, nil)
	serve(r, http.MethodGet, "/boom", nil, nil)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d: expected %s, got %s", i, wantLevels[i], e.Level)
		}
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-1" {
		t.Errorf("expected request_id req-1, got %v", got)
	}
	if _, ok := entries[2].ContextMap()["error"]; !ok {
		t.Error("expected error field on 500 entry")
	}
}
