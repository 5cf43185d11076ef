package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kandacms/internal/handlers"
	"kandacms/internal/store/memory"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return New(handlers.New(memory.New(), nil))
}

func TestHealthRoute(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != `{"status":"ok"}` {
		t.Fatalf("body = %q", body)
	}
}

func TestAPIRoutesAreWired(t *testing.T) {
	r := testRouter(t)

	// Every route must resolve to a handler, not chi's 404/405.
	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/news"},
		{http.MethodGet, "/api/news/all"},
		{http.MethodGet, "/api/media"},
		{http.MethodGet, "/api/contact"},
		{http.MethodGet, "/api/settings"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code == http.StatusNotFound || rec.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s = %d, route not wired", tc.method, tc.path, rec.Code)
		}
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}
