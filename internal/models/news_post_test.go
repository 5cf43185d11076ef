package models

import (
	"strings"
	"testing"
	"time"
)

func strp(s string) *string { return &s }

func TestNewsPostInputValidate(t *testing.T) {
	t.Run("valid minimal payload", func(t *testing.T) {
		in := NewsPostInput{
			Title:    strp("T"),
			Content:  strp("C"),
			Excerpt:  strp("E"),
			Category: strp("News"),
		}
		if errs := in.Validate(); errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("enumerates every offending field", func(t *testing.T) {
		in := NewsPostInput{
			Title:  strp("   "),
			Status: strp("archived"),
			Date:   strp("31-08-2026"),
		}
		errs := in.Validate()
		fields := map[string]bool{}
		for _, fe := range errs {
			fields[fe.Field] = true
		}
		for _, want := range []string{"title", "content", "excerpt", "category", "status", "date"} {
			if !fields[want] {
				t.Errorf("expected a validation error for %q, got %v", want, errs)
			}
		}
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		in := NewsPostInput{
			Title:    strp(strings.Repeat("x", 301)),
			Content:  strp("C"),
			Excerpt:  strp("E"),
			Category: strp("News"),
		}
		errs := in.Validate()
		if len(errs) != 1 || errs[0].Field != "title" {
			t.Fatalf("expected a single title error, got %v", errs)
		}
	})
}

func TestNewsPostInputNormalize(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("applies defaults", func(t *testing.T) {
		in := NewsPostInput{
			Title:    strp("T"),
			Content:  strp("C"),
			Excerpt:  strp("E"),
			Category: strp("News"),
		}
		p := in.Normalize(now)
		if p.Status != PostStatusDraft {
			t.Errorf("status = %q, want draft", p.Status)
		}
		if p.Author != "Admin" {
			t.Errorf("author = %q, want Admin", p.Author)
		}
		if p.Date != "2026-08-31" {
			t.Errorf("date = %q, want 2026-08-31", p.Date)
		}
		if p.FeaturedImage != nil {
			t.Errorf("featuredImage = %v, want nil", *p.FeaturedImage)
		}
	})

	t.Run("keeps provided values", func(t *testing.T) {
		in := NewsPostInput{
			Title:         strp("T"),
			Content:       strp("C"),
			Excerpt:       strp("E"),
			Category:      strp("Events"),
			Status:        strp("published"),
			Date:          strp("2026-01-02"),
			Author:        strp("Registrar"),
			FeaturedImage: strp("https://example.com/a.jpg"),
		}
		p := in.Normalize(now)
		if p.Status != PostStatusPublished || p.Date != "2026-01-02" || p.Author != "Registrar" {
			t.Fatalf("unexpected normalized post: %+v", p)
		}
		if p.FeaturedImage == nil || *p.FeaturedImage != "https://example.com/a.jpg" {
			t.Fatalf("featuredImage not kept: %+v", p.FeaturedImage)
		}
	})
}

func TestNewsPostPatchApply(t *testing.T) {
	existing := NewsPost{
		Title:    "Old",
		Content:  "Body",
		Excerpt:  "Ex",
		Category: "News",
		Status:   PostStatusDraft,
		Date:     "2026-08-01",
		Author:   "Admin",
	}

	patch := NewsPostPatch{
		Status: strp("published"),
		Title:  strp("New"),
	}
	if errs := patch.Validate(); errs != nil {
		t.Fatalf("patch should be valid, got %v", errs)
	}
	patch.Apply(&existing)

	if existing.Title != "New" {
		t.Errorf("title = %q, want New", existing.Title)
	}
	if existing.Status != PostStatusPublished {
		t.Errorf("status = %q, want published", existing.Status)
	}
	// Absent fields stay untouched.
	if existing.Content != "Body" || existing.Date != "2026-08-01" || existing.Author != "Admin" {
		t.Errorf("absent fields were modified: %+v", existing)
	}
}

func TestNewsPostPatchValidate(t *testing.T) {
	patch := NewsPostPatch{Status: strp("deleted")}
	errs := patch.Validate()
	if len(errs) != 1 || errs[0].Field != "status" {
		t.Fatalf("expected a single status error, got %v", errs)
	}

	empty := NewsPostPatch{}
	if errs := empty.Validate(); errs != nil {
		t.Fatalf("empty patch should be valid, got %v", errs)
	}
}
