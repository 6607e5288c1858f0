package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareCapturesStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/api/v1/impact-analysis", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d passed through", w.Code, http.StatusTeapot)
	}
}

func TestMiddlewareDefaultStatus(t *testing.T) {
	// A handler that never calls WriteHeader records 200.
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRecordersDoNotPanic(t *testing.T) {
	RecordImpactAnalysis("airburst")
	RecordImpactAnalysis("surface")
	RecordDeflectionAssessment(true)
	RecordDeflectionAssessment(false)
	RecordCatalogLookup("ok")
	RecordCatalogLookup("error")
}
