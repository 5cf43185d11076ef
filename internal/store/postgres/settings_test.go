package postgres

import (
	"testing"

	"kandacms/internal/models"
)

func TestSettingsStoreSingleton(t *testing.T) {
	db := testDB(t)
	stores := New(db)
	t.Cleanup(func() { db.Exec("DELETE FROM site_settings") })

	// Start clean so the create path is exercised.
	db.Exec("DELETE FROM site_settings")

	first, err := stores.Settings.Update(models.SiteSettingsPatch{HeroImage: models.NullableOf("hero.jpg")})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if first.HeroImage == nil || *first.HeroImage != "hero.jpg" {
		t.Fatalf("first update: %+v", first)
	}

	second, err := stores.Settings.Update(models.SiteSettingsPatch{
		AboutImage:   models.NullableOf("about.jpg"),
		ContactEmail: models.NullableOf("info@nvtikanda.edu.gh"),
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("singleton id changed: %v -> %v", first.ID, second.ID)
	}
	if second.HeroImage == nil || *second.HeroImage != "hero.jpg" {
		t.Fatalf("hero image lost on partial update: %+v", second)
	}

	// The row count never exceeds one, whatever the update history.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("site_settings has %d rows, want 1", count)
	}

	got, err := stores.Settings.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.AboutImage == nil || *got.AboutImage != "about.jpg" {
		t.Fatalf("get returned %+v", got)
	}

	// An explicit null clears a stored slot without touching the rest.
	third, err := stores.Settings.Update(models.SiteSettingsPatch{HeroImage: models.NullableNull[string]()})
	if err != nil {
		t.Fatalf("third update: %v", err)
	}
	if third.HeroImage != nil {
		t.Fatalf("explicit null did not clear hero image: %q", *third.HeroImage)
	}
	if third.AboutImage == nil || *third.AboutImage != "about.jpg" {
		t.Fatalf("clearing one slot touched another: %+v", third)
	}
}
