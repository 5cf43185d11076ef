package handlers_test

import (
	"net/http"
	"testing"

	"kandacms/internal/models"
)

func TestMediaLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/media", map[string]string{
		"filename": "campus.jpg",
		"url":      "data:image/jpeg;base64,AAAA",
		"size":     "1.2 MB",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d, body %s", rec.Code, rec.Body.String())
	}
	var m models.Media
	decode(t, rec, &m)
	if m.UploadDate.IsZero() {
		t.Fatal("uploadDate was not stamped")
	}

	rec = env.do(t, http.MethodGet, "/api/media/"+m.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get = %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/media", nil)
	var items []models.Media
	decode(t, rec, &items)
	if len(items) != 1 || items[0].Filename != "campus.jpg" {
		t.Fatalf("list = %+v", items)
	}

	rec = env.do(t, http.MethodDelete, "/api/media/"+m.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}
	rec = env.do(t, http.MethodDelete, "/api/media/"+m.ID.String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", rec.Code)
	}
}

func TestMediaCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/media", map[string]string{"filename": "x.png"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create = %d, want 400", rec.Code)
	}

	var resp struct {
		Details []models.FieldError `json:"details"`
	}
	decode(t, rec, &resp)
	if len(resp.Details) != 2 {
		t.Fatalf("expected url and size errors, got %+v", resp.Details)
	}
}
