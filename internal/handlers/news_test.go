package handlers_test

import (
	"net/http"
	"testing"

	"kandacms/internal/models"
)

func TestNewsCreateAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/news", map[string]string{
		"title":    "T",
		"content":  "C",
		"excerpt":  "E",
		"category": "News",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d, body %s", rec.Code, rec.Body.String())
	}

	var post models.NewsPost
	decode(t, rec, &post)
	if post.Status != models.PostStatusDraft {
		t.Errorf("status = %q, want draft", post.Status)
	}
	if post.Author != "Admin" {
		t.Errorf("author = %q, want Admin", post.Author)
	}
	if post.Date == "" {
		t.Error("date was not defaulted")
	}

	// The created record is readable by id.
	rec = env.do(t, http.MethodGet, "/api/news/"+post.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get = %d", rec.Code)
	}
}

func TestNewsCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/news", map[string]string{"title": "only a title"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create = %d, want 400", rec.Code)
	}

	var resp struct {
		Error   string              `json:"error"`
		Details []models.FieldError `json:"details"`
	}
	decode(t, rec, &resp)
	if len(resp.Details) < 3 {
		t.Fatalf("expected details for content, excerpt and category, got %+v", resp.Details)
	}

	// Nothing was stored.
	rec = env.do(t, http.MethodGet, "/api/news/all", nil)
	var posts []models.NewsPost
	decode(t, rec, &posts)
	if len(posts) != 0 {
		t.Fatalf("failed create stored a post: %+v", posts)
	}
}

func TestNewsPublicListingFiltersDrafts(t *testing.T) {
	env := newTestEnv(t)

	create := func(title, status string) models.NewsPost {
		rec := env.do(t, http.MethodPost, "/api/news", map[string]string{
			"title": title, "content": "C", "excerpt": "E", "category": "News", "status": status,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %q = %d", title, rec.Code)
		}
		var p models.NewsPost
		decode(t, rec, &p)
		return p
	}

	create("Visible", "published")
	draft := create("Hidden", "draft")

	rec := env.do(t, http.MethodGet, "/api/news", nil)
	var public []models.NewsPost
	decode(t, rec, &public)
	for _, p := range public {
		if p.Status != models.PostStatusPublished {
			t.Fatalf("public listing contains %q with status %q", p.Title, p.Status)
		}
	}
	if len(public) != 1 || public[0].Title != "Visible" {
		t.Fatalf("public listing = %+v", public)
	}

	rec = env.do(t, http.MethodGet, "/api/news/all", nil)
	var all []models.NewsPost
	decode(t, rec, &all)
	if len(all) != 2 {
		t.Fatalf("full listing has %d posts, want 2", len(all))
	}

	// Publishing the draft makes it appear on the public endpoint.
	rec = env.do(t, http.MethodPut, "/api/news/"+draft.ID.String(), map[string]string{"status": "published"})
	if rec.Code != http.StatusOK {
		t.Fatalf("publish = %d", rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/api/news", nil)
	decode(t, rec, &public)
	if len(public) != 2 {
		t.Fatalf("public listing after publish has %d posts, want 2", len(public))
	}
}

func TestNewsUpdateExplicitNullClearsImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/news", map[string]string{
		"title": "T", "content": "C", "excerpt": "E", "category": "News",
		"featuredImage": "https://example.com/a.jpg",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d", rec.Code)
	}
	var post models.NewsPost
	decode(t, rec, &post)
	if post.FeaturedImage == nil {
		t.Fatal("featuredImage not stored")
	}

	// An absent field leaves the image; an explicit null clears it.
	rec = env.do(t, http.MethodPut, "/api/news/"+post.ID.String(), map[string]string{"title": "T2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d", rec.Code)
	}
	decode(t, rec, &post)
	if post.FeaturedImage == nil {
		t.Fatal("absent field cleared the image")
	}

	rec = env.do(t, http.MethodPut, "/api/news/"+post.ID.String(), map[string]any{"featuredImage": nil})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d", rec.Code)
	}
	decode(t, rec, &post)
	if post.FeaturedImage != nil {
		t.Fatalf("explicit null did not clear featuredImage: %q", *post.FeaturedImage)
	}
}

func TestNewsUpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/news/8e3f2a9c-0000-4000-8000-000000000000", map[string]string{"title": "X"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing = %d, want 404", rec.Code)
	}

	// A malformed id behaves like a missing one.
	rec = env.do(t, http.MethodPut, "/api/news/not-a-uuid", map[string]string{"title": "X"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update malformed id = %d, want 404", rec.Code)
	}
}

func TestNewsDeleteMissingKeepsCollection(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/news", map[string]string{
		"title": "Keep", "content": "C", "excerpt": "E", "category": "News",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/api/news/8e3f2a9c-0000-4000-8000-000000000000", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete missing = %d, want 404", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/news/all", nil)
	var posts []models.NewsPost
	decode(t, rec, &posts)
	if len(posts) != 1 {
		t.Fatalf("collection size changed after not-found delete: %d", len(posts))
	}

	rec = env.do(t, http.MethodDelete, "/api/news/"+posts[0].ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}
	var resp map[string]bool
	decode(t, rec, &resp)
	if !resp["success"] {
		t.Fatalf("delete response = %+v", resp)
	}
}
