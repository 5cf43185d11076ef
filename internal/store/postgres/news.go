// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// NewsStore handles all news post database operations.
type NewsStore struct {
	db *sql.DB
}

const newsColumns = `id, title, content, excerpt, featured_image, category, status, date, author`

func scanPost(row interface{ Scan(...any) error }) (*models.NewsPost, error) {
	p := &models.NewsPost{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.FeaturedImage,
		&p.Category, &p.Status, &p.Date, &p.Author,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every post, newest editorial date first.
func (s *NewsStore) List() ([]models.NewsPost, error) {
	return s.list(`
		SELECT ` + newsColumns + `
		FROM news_posts
		ORDER BY date DESC, id DESC
	`)
}

// ListPublished returns only published posts, newest editorial date first.
// Used by the public news endpoint.
func (s *NewsStore) ListPublished() ([]models.NewsPost, error) {
	return s.list(`
		SELECT ` + newsColumns + `
		FROM news_posts
		WHERE status = 'published'
		ORDER BY date DESC, id DESC
	`)
}

func (s *NewsStore) list(query string) ([]models.NewsPost, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list news posts: %w", err)
	}
	defer rows.Close()

	var posts []models.NewsPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *NewsStore) FindByID(id uuid.UUID) (*models.NewsPost, error) {
	p, err := scanPost(s.db.QueryRow(`
		SELECT `+newsColumns+` FROM news_posts WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID.
func (s *NewsStore) Create(post models.NewsPost) (*models.NewsPost, error) {
	created, err := scanPost(s.db.QueryRow(`
		INSERT INTO news_posts (id, title, content, excerpt, featured_image, category, status, date, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+newsColumns,
		uuid.New(), post.Title, post.Content, post.Excerpt, post.FeaturedImage,
		post.Category, post.Status, post.Date, post.Author,
	))
	if err != nil {
		return nil, fmt.Errorf("create news post: %w", err)
	}
	return created, nil
}

// Update applies a partial update in a single statement: absent patch
// fields arrive as NULL and COALESCE keeps the stored value. The nullable
// featured_image column carries an explicit presence flag instead, so a
// present null clears it. Returns nil when the id does not exist.
func (s *NewsStore) Update(id uuid.UUID, patch models.NewsPostPatch) (*models.NewsPost, error) {
	updated, err := scanPost(s.db.QueryRow(`
		UPDATE news_posts SET
			title          = COALESCE($2, title),
			content        = COALESCE($3, content),
			excerpt        = COALESCE($4, excerpt),
			featured_image = CASE WHEN $5 THEN $6 ELSE featured_image END,
			category       = COALESCE($7, category),
			status         = COALESCE($8, status),
			date           = COALESCE($9, date),
			author         = COALESCE($10, author)
		WHERE id = $1
		RETURNING `+newsColumns,
		id, patch.Title, patch.Content, patch.Excerpt,
		patch.FeaturedImage.Present, patch.FeaturedImage.Value,
		patch.Category, patch.Status, patch.Date, patch.Author,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update news post: %w", err)
	}
	return updated, nil
}

// Delete removes a post by ID, reporting whether a row existed.
func (s *NewsStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM news_posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news post: %w", err)
	}
	return n > 0, nil
}
