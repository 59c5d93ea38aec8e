package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func scrape(t *testing.T, m *Metrics, update func()) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler(update).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.IncLinted(ResultInvalid, 3)
	m.IncLinted(ResultValid, 0)
	m.IncDraftsStored()
	m.IncRateLimited()

	out := scrape(t, m, func() { m.SetDraftsActive(7) })

	for _, want := range []string{
		`livectl_documents_linted_total{result="invalid"} 1`,
		`livectl_documents_linted_total{result="valid"} 1`,
		`livectl_lint_problems_total 3`,
		`livectl_drafts_stored_total 1`,
		`livectl_rate_limited_total 1`,
		`livectl_drafts_active 7`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected scrape to contain %q", want)
		}
	}
}

func TestRequestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(RequestMiddleware(m))
	r.GET("/api/v1/types/:name", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/api/v1/types/a", "/api/v1/types/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, m, nil)
	if !strings.Contains(out, `livectl_http_requests_total{method="GET",route="/api/v1/types/:name",status="404"} 2`) {
		t.Errorf("expected two requests on the templated route, got:\n%s", out)
	}
	if !strings.Contains(out, `route="unmatched"`) {
		t.Error("expected unmatched route label")
	}
}
