// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a news post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// DateLayout is the editorial date format used by news posts.
const DateLayout = "2006-01-02"

// NewsPost is a dashboard-managed news article. Content is stored as
// HTML produced by the dashboard editor.
type NewsPost struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Category      string     `json:"category"`
	Status        PostStatus `json:"status"`
	Date          string     `json:"date"`
	Author        string     `json:"author"`
}

// IsPublished returns true if the post is visible on the public site.
func (p *NewsPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// NewsPostInput is the create payload for a news post. Pointer fields
// are optional and filled with defaults by Normalize.
type NewsPostInput struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featuredImage"`
	Category      *string `json:"category"`
	Status        *string `json:"status"`
	Date          *string `json:"date"`
	Author        *string `json:"author"`
}

// Validate checks a create payload and returns every offending field.
func (in *NewsPostInput) Validate() FieldErrors {
	var errs FieldErrors
	errs = requireString(errs, "title", in.Title, maxTitleLen)
	errs = requireString(errs, "content", in.Content, maxContentLen)
	errs = requireString(errs, "excerpt", in.Excerpt, maxExcerptLen)
	errs = requireString(errs, "category", in.Category, maxCategoryLen)
	errs = checkOptionalPost(errs, in.Status, in.Date, in.Author)
	return errs
}

// Normalize produces a fully-typed post from a validated payload, applying
// the documented defaults: status draft, author Admin, date today,
// featuredImage null.
func (in *NewsPostInput) Normalize(now time.Time) NewsPost {
	p := NewsPost{
		Title:         strings.TrimSpace(*in.Title),
		Content:       *in.Content,
		Excerpt:       *in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		Category:      strings.TrimSpace(*in.Category),
		Status:        PostStatusDraft,
		Date:          now.Format(DateLayout),
		Author:        "Admin",
	}
	if in.Status != nil {
		p.Status = PostStatus(*in.Status)
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Author != nil && strings.TrimSpace(*in.Author) != "" {
		p.Author = strings.TrimSpace(*in.Author)
	}
	return p
}

// NewsPostPatch is the partial-update payload: every field optional,
// absent fields leave the existing record untouched. FeaturedImage is
// the one nullable column, so it is Nullable rather than a pointer: an
// explicit null clears the stored image instead of being mistaken for
// an absent field.
type NewsPostPatch struct {
	Title         *string          `json:"title"`
	Content       *string          `json:"content"`
	Excerpt       *string          `json:"excerpt"`
	FeaturedImage Nullable[string] `json:"featuredImage"`
	Category      *string          `json:"category"`
	Status        *string          `json:"status"`
	Date          *string          `json:"date"`
	Author        *string          `json:"author"`
}

// Validate checks the fields that are present and returns every offending one.
func (p *NewsPostPatch) Validate() FieldErrors {
	var errs FieldErrors
	errs = checkPresentString(errs, "title", p.Title, maxTitleLen)
	errs = checkPresentString(errs, "content", p.Content, maxContentLen)
	errs = checkPresentString(errs, "excerpt", p.Excerpt, maxExcerptLen)
	errs = checkPresentString(errs, "category", p.Category, maxCategoryLen)
	errs = checkOptionalPost(errs, p.Status, p.Date, p.Author)
	return errs
}

// Apply copies the present fields onto an existing post. The id is never
// touched.
func (p *NewsPostPatch) Apply(post *NewsPost) {
	if p.Title != nil {
		post.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.FeaturedImage.Present {
		post.FeaturedImage = p.FeaturedImage.Value
	}
	if p.Category != nil {
		post.Category = strings.TrimSpace(*p.Category)
	}
	if p.Status != nil {
		post.Status = PostStatus(*p.Status)
	}
	if p.Date != nil {
		post.Date = *p.Date
	}
	if p.Author != nil {
		post.Author = strings.TrimSpace(*p.Author)
	}
}

// checkOptionalPost validates the shared optional post fields.
func checkOptionalPost(errs FieldErrors, status, date, author *string) FieldErrors {
	if status != nil {
		switch PostStatus(*status) {
		case PostStatusDraft, PostStatusPublished:
		default:
			errs = errs.Add("status", "must be either \"draft\" or \"published\"")
		}
	}
	if date != nil {
		if _, err := time.Parse(DateLayout, *date); err != nil {
			errs = errs.Add("date", "must be a date in YYYY-MM-DD form")
		}
	}
	if author != nil && utf8.RuneCountInString(*author) > maxAuthorLen {
		errs = errs.Add("author", tooLong(maxAuthorLen))
	}
	return errs
}
