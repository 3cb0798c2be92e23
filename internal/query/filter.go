// internal/query/filter.go
//
// Package query is the in-memory filtering and pagination engine shared by
// the idea, comment, and user listings. Filters compose with logical AND; an
// absent value imposes no constraint. Filtering preserves input order and is
// idempotent, so pages stay stable across repeated application.
package query

import (
	"strings"

	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/model"
)

// Filter carries the optional constraints a listing may apply. Zero values
// mean "no constraint".
type Filter struct {
	Query      string
	Status     model.IdeaStatus
	Category   model.IdeaCategory
	UserID     uuid.UUID
	Department string
	Role       model.Role
}

func matchText(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Ideas returns the ideas matching the filter, preserving input order.
// Free text matches against title and description.
func Ideas(items []*model.Idea, f Filter) []*model.Idea {
	out := make([]*model.Idea, 0, len(items))
	for _, it := range items {
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.UserID != uuid.Nil && it.SubmittedByID != f.UserID {
			continue
		}
		if f.Department != "" && !strings.EqualFold(it.Department, f.Department) {
			continue
		}
		if !matchText(f.Query, it.Title, it.Description) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Comments returns the comments matching the filter, preserving input order.
// Free text matches against content and the author's display name/username.
func Comments(items []*model.Comment, f Filter) []*model.Comment {
	out := make([]*model.Comment, 0, len(items))
	for _, it := range items {
		if f.UserID != uuid.Nil && it.UserID != f.UserID {
			continue
		}
		fields := []string{it.Content}
		if it.Author != nil {
			fields = append(fields, it.Author.DisplayName, it.Author.Username)
		}
		if !matchText(f.Query, fields...) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Users returns the users matching the filter, preserving input order.
// Free text matches against display name, username, and email.
func Users(items []*model.User, f Filter) []*model.User {
	out := make([]*model.User, 0, len(items))
	for _, it := range items {
		if f.Role != "" && it.Role != f.Role {
			continue
		}
		if f.Department != "" && !strings.EqualFold(it.Department, f.Department) {
			continue
		}
		if !matchText(f.Query, it.DisplayName, it.Username, it.Email) {
			continue
		}
		out = append(out, it)
	}
	return out
}
