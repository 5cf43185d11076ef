package database

import (
	"fmt"
	"log/slog"
	"time"

	"kandacms/internal/models"
	"kandacms/internal/store"
)

// Seed populates a fresh store with the shared admin credential and a few
// sample news posts. It is a no-op when users already exist, so it is safe
// to run on every start. It works against the store interfaces, so both
// the database and the memory backend get the same starting data.
func Seed(s *store.Stores) error {
	count, err := s.Users.Count()
	if err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		slog.Info("store already seeded, skipping")
		return nil
	}

	// The password is stored as plaintext. That is the documented contract
	// of this prototype, not something to harden here.
	if _, err := s.Users.Create("admin", "admin123"); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}
	slog.Warn("seeded shared admin credential (plaintext password)",
		"username", "admin",
	)

	for _, post := range samplePosts(time.Now()) {
		if _, err := s.News.Create(post); err != nil {
			return fmt.Errorf("seed insert post: %w", err)
		}
	}

	slog.Info("store seeded with sample news posts")
	return nil
}

// samplePosts returns the starter content shown on a fresh install.
func samplePosts(now time.Time) []models.NewsPost {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(models.DateLayout)
	}
	img := func(url string) *string { return &url }

	return []models.NewsPost{
		{
			Title:         "Welcome to NVTI Kanda - Enrollment Now Open",
			Content:       "We are excited to announce that enrollment for the new academic year is now open. Join us to start your journey towards a successful vocational career with hands-on training and industry-ready skills.",
			Excerpt:       "We are excited to announce that enrollment for the new academic year is now open...",
			FeaturedImage: img("https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=800&q=80"),
			Category:      "Announcements",
			Status:        models.PostStatusPublished,
			Date:          day(0),
			Author:        "Admin",
		},
		{
			Title:         "Skills Competition Winners Announced",
			Content:       "Congratulations to our students who excelled in the national vocational skills competition. Winners received awards for their outstanding performance in electrical installation, welding, and carpentry.",
			Excerpt:       "Congratulations to our students who excelled in the national vocational skills competition...",
			FeaturedImage: img("https://images.unsplash.com/photo-1524178232363-1fb2b075b655?w=800&q=80"),
			Category:      "Events",
			Status:        models.PostStatusPublished,
			Date:          day(-2),
			Author:        "Admin",
		},
		{
			Title:         "New Workshop Equipment Installed",
			Content:       "Our facilities have been upgraded with state-of-the-art workshop equipment, including modern welding machines, electrical testing apparatus, and precision carpentry tools.",
			Excerpt:       "Our facilities have been upgraded with state-of-the-art workshop equipment...",
			FeaturedImage: img("https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=800&q=80"),
			Category:      "News",
			Status:        models.PostStatusDraft,
			Date:          day(-4),
			Author:        "Admin",
		},
		{
			Title:         "Industry Partnership Program Launch",
			Content:       "NVTI Kanda has partnered with leading industry employers to provide job placement opportunities for our graduates, with direct pathways to employment on completing their training.",
			Excerpt:       "NVTI Kanda has partnered with leading industry employers to provide job placement opportunities...",
			FeaturedImage: img("https://images.unsplash.com/photo-1509062522246-3755977927d7?w=800&q=80"),
			Category:      "Achievements",
			Status:        models.PostStatusPublished,
			Date:          day(-7),
			Author:        "Admin",
		},
	}
}
