package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/internal/http/middleware"
	"github.com/edirooss/livectl/internal/metrics"
	"github.com/edirooss/livectl/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const validNit = `{"NetworkId":100,"NetworkName":"Test Network","RepInterval":5000}`

func newRouter(t *testing.T, strictDefault bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	m := metrics.New()
	lintsvc := service.NewLintService(log, m, service.LintOptions{StrictEnums: strictDefault})
	draftsvc := service.NewDraftService(log, service.NewMemoryDraftStore(log), lintsvc, m, service.DraftOptions{})
	catalogsvc := service.NewCatalogService(log)

	typeshndlr := NewTypesHandler(log, catalogsvc)
	linthndlr := NewLintHandler(log, lintsvc)
	draftshndlr := NewDraftsHandler(log, draftsvc, lintsvc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/types", typeshndlr.List)
	v1.GET("/types/:name", typeshndlr.Get)
	v1.POST("/lint", linthndlr.LintBatch)
	v1.POST("/lint/:name", linthndlr.Lint)
	v1.POST("/drafts/:name", draftshndlr.CreateDraft)
	v1.GET("/drafts", draftshndlr.GetDraftList)
	requireValidID := middleware.RequireValidDraftID()
	v1.GET("/drafts/:id", requireValidID, draftshndlr.GetDraft)
	v1.DELETE("/drafts/:id", requireValidID, draftshndlr.DeleteDraft)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestLint_StatusCodes(t *testing.T) {
	r := newRouter(t, false)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"valid", "/api/v1/lint/DvbNitSettings", validNit, http.StatusOK},
		{"out of range", "/api/v1/lint/DvbNitSettings", `{"NetworkId":100,"NetworkName":"n","RepInterval":10}`, http.StatusUnprocessableEntity},
		{"unknown field", "/api/v1/lint/DvbNitSettings", `{"NetworkId":1,"NetworkName":"n","Extra":1}`, http.StatusBadRequest},
		{"unknown field in variant", "/api/v1/lint/AudioCodecSettings", `{"AacSettings":{"Bitrat":1}}`, http.StatusBadRequest},
		{"malformed", "/api/v1/lint/DvbNitSettings", `{"NetworkId":`, http.StatusBadRequest},
		{"empty body", "/api/v1/lint/DvbNitSettings", ``, http.StatusBadRequest},
		{"unknown type", "/api/v1/lint/NoSuchType", `{}`, http.StatusNotFound},
		{"bad strict param", "/api/v1/lint/DvbNitSettings?strict=maybe", validNit, http.StatusBadRequest},
		{"strict unknown enum", "/api/v1/lint/Ac3Settings?strict=true", `{"CodingMode":"CODING_MODE_9_9"}`, http.StatusUnprocessableEntity},
		{"lenient unknown enum", "/api/v1/lint/Ac3Settings", `{"CodingMode":"CODING_MODE_9_9"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLint_ProblemsBody(t *testing.T) {
	r := newRouter(t, false)

	rec := do(r, http.MethodPost, "/api/v1/lint/DvbNitSettings", `{"NetworkId":70000,"NetworkName":""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	res := decode[service.LintResult](t, rec)
	if res.Problems["NetworkId"] != "must be <= 65536" {
		t.Errorf("unexpected NetworkId problem %q", res.Problems["NetworkId"])
	}
	if res.Problems["NetworkName"] != "length must be at least 1" {
		t.Errorf("unexpected NetworkName problem %q", res.Problems["NetworkName"])
	}
}

func TestLint_StrictDefaultFromConfig(t *testing.T) {
	r := newRouter(t, true)

	if rec := do(r, http.MethodPost, "/api/v1/lint/Ac3Settings", `{"CodingMode":"CODING_MODE_9_9"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected strict default to reject, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/v1/lint/Ac3Settings?strict=false", `{"CodingMode":"CODING_MODE_9_9"}`); rec.Code != http.StatusOK {
		t.Errorf("expected query to override default, got %d", rec.Code)
	}
}

func TestLintBatch(t *testing.T) {
	r := newRouter(t, false)

	body := `{"items":[
		{"type":"DvbNitSettings","payload":` + validNit + `},
		{"type":"DvbNitSettings","payload":{"NetworkId":1}},
		{"type":"Unknown","payload":{}}
	]}`
	rec := do(r, http.MethodPost, "/api/v1/lint", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[batchResponse](t, rec)
	if resp.Valid {
		t.Error("expected batch invalid")
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	if !resp.Results[0].Valid {
		t.Errorf("item 0: expected valid, got %+v", resp.Results[0])
	}
	if resp.Results[1].Problems["NetworkName"] == "" {
		t.Errorf("item 1: expected NetworkName problem, got %+v", resp.Results[1])
	}
	if resp.Results[2].Error == "" {
		t.Errorf("item 2: expected error, got %+v", resp.Results[2])
	}
}

func TestLintBatch_BadEnvelope(t *testing.T) {
	r := newRouter(t, false)

	for _, body := range []string{``, `{"items":{}}`, `{"items":[],"extra":true}`} {
		if rec := do(r, http.MethodPost, "/api/v1/lint", body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestTypes(t *testing.T) {
	r := newRouter(t, false)

	rec := do(r, http.MethodGet, "/api/v1/types", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list := decode[[]service.TypeSummary](t, rec)
	if rec.Header().Get("X-Total-Count") == "" || len(list) == 0 {
		t.Fatal("expected non-empty catalog with count header")
	}

	if rec.Header().Get("X-Catalog-Generated-At") == "" {
		t.Error("expected catalog generation header")
	}

	rec = do(r, http.MethodGet, "/api/v1/types/DvbNitSettings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"RepInterval"`) {
		t.Errorf("expected RepInterval in descriptor, got %s", rec.Body.String())
	}

	if rec := do(r, http.MethodGet, "/api/v1/types/Nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDrafts_Lifecycle(t *testing.T) {
	r := newRouter(t, false)

	rec := do(r, http.MethodPost, "/api/v1/drafts/DvbNitSettings", validNit)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[draft.Draft](t, rec)
	if loc := rec.Header().Get("Location"); loc != "/api/v1/drafts/"+created.ID {
		t.Errorf("unexpected Location %q", loc)
	}

	rec = do(r, http.MethodGet, "/api/v1/drafts/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[draft.Draft](t, rec)
	if got.Hash != created.Hash || string(got.Payload) != validNit {
		t.Errorf("unexpected draft %+v", got)
	}

	rec = do(r, http.MethodGet, "/api/v1/drafts", "")
	if rec.Code != http.StatusOK || rec.Header().Get("X-Total-Count") != "1" {
		t.Fatalf("expected one draft, got %d / %q", rec.Code, rec.Header().Get("X-Total-Count"))
	}

	if rec := do(r, http.MethodDelete, "/api/v1/drafts/"+created.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/api/v1/drafts/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	if rec := do(r, http.MethodDelete, "/api/v1/drafts/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestDrafts_Rejections(t *testing.T) {
	r := newRouter(t, false)

	if rec := do(r, http.MethodPost, "/api/v1/drafts/DvbNitSettings", `{"NetworkId":100}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for invalid draft, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/v1/drafts/Nope", `{}`); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown type, got %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/api/v1/drafts/not-a-uuid", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", rec.Code)
	}

	rec := do(r, http.MethodGet, "/api/v1/drafts", "")
	if rec.Header().Get("X-Total-Count") != "0" {
		t.Errorf("expected nothing stored, got %q", rec.Header().Get("X-Total-Count"))
	}
}
