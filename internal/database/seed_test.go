package database

import (
	"testing"

	"kandacms/internal/models"
	"kandacms/internal/store/memory"
)

func TestSeedCreatesAdminAndSamplePosts(t *testing.T) {
	stores := memory.New()

	if err := Seed(stores); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, err := stores.Users.FindByUsername("admin")
	if err != nil || admin == nil {
		t.Fatalf("admin = (%+v, %v)", admin, err)
	}
	if admin.Password != "admin123" {
		t.Fatalf("admin password = %q", admin.Password)
	}

	all, err := stores.News.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("seeded %d posts, want 4", len(all))
	}

	published, _ := stores.News.ListPublished()
	if len(published) != 3 {
		t.Fatalf("seeded %d published posts, want 3", len(published))
	}
	for _, p := range published {
		if p.Status != models.PostStatusPublished {
			t.Fatalf("published list contains %q", p.Status)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	stores := memory.New()

	if err := Seed(stores); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(stores); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	all, _ := stores.News.List()
	if len(all) != 4 {
		t.Fatalf("second seed duplicated posts: %d", len(all))
	}
	count, _ := stores.Users.Count()
	if count != 1 {
		t.Fatalf("second seed duplicated users: %d", count)
	}
}
