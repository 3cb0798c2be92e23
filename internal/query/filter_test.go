package query

import (
	"testing"

	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/model"
)

func testIdeas() []*model.Idea {
	return []*model.Idea{
		{Title: "Faster CI builds", Description: "Cache dependencies between runs", Status: model.StatusSubmitted, Category: model.CategoryPainPoint},
		{Title: "Customer portal", Description: "Self-serve billing and invoices", Status: model.StatusInReview, Category: model.CategoryOpportunity},
		{Title: "Slow deploys", Description: "CI pipeline takes forty minutes", Status: model.StatusSubmitted, Category: model.CategoryPainPoint},
	}
}

func TestIdeasFreeTextIsCaseInsensitive(t *testing.T) {
	got := Ideas(testIdeas(), Filter{Query: "ci"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Matches come back in input order
	if got[0].Title != "Faster CI builds" || got[1].Title != "Slow deploys" {
		t.Errorf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}

	upper := Ideas(testIdeas(), Filter{Query: "CI"})
	if len(upper) != len(got) {
		t.Errorf("case change altered the result: %d vs %d", len(upper), len(got))
	}
}

func TestIdeasFiltersCompose(t *testing.T) {
	// Each constraint alone matches more than both together: AND semantics.
	byQuery := Ideas(testIdeas(), Filter{Query: "ci"})
	byStatus := Ideas(testIdeas(), Filter{Status: model.StatusSubmitted})
	both := Ideas(testIdeas(), Filter{Query: "forty", Status: model.StatusSubmitted})

	if len(byQuery) != 2 || len(byStatus) != 2 {
		t.Fatalf("unexpected single-filter counts: %d, %d", len(byQuery), len(byStatus))
	}
	if len(both) != 1 || both[0].Title != "Slow deploys" {
		t.Fatalf("expected single conjunctive match, got %d", len(both))
	}
}

func TestIdeasFilterIsIdempotent(t *testing.T) {
	f := Filter{Status: model.StatusSubmitted, Query: "ci"}
	once := Ideas(testIdeas(), f)
	twice := Ideas(once, f)

	if len(once) != len(twice) {
		t.Fatalf("second application changed the count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("second application reordered item %d", i)
		}
	}
}

func TestIdeasEmptyFilterReturnsAll(t *testing.T) {
	items := testIdeas()
	got := Ideas(items, Filter{})
	if len(got) != len(items) {
		t.Fatalf("expected all %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d out of order", i)
		}
	}
}

func TestCommentsMatchAuthorNames(t *testing.T) {
	author := &model.User{Username: "jsmith", DisplayName: "Jordan Smith"}
	other := &model.User{Username: "apatel", DisplayName: "Avni Patel"}
	comments := []*model.Comment{
		{Content: "Love this", Author: author},
		{Content: "Needs more detail", Author: other},
		{Content: "No author on this one"},
	}

	got := Comments(comments, Filter{Query: "jordan"})
	if len(got) != 1 || got[0].Content != "Love this" {
		t.Fatalf("expected author-name match, got %d results", len(got))
	}

	// A comment with no preloaded author still matches on content
	got = Comments(comments, Filter{Query: "no author"})
	if len(got) != 1 {
		t.Fatalf("expected content match, got %d results", len(got))
	}
}

func TestCommentsFilterByUser(t *testing.T) {
	uid := uuid.New()
	comments := []*model.Comment{
		{Content: "mine", UserID: uid},
		{Content: "theirs", UserID: uuid.New()},
		{Content: "also mine", UserID: uid},
	}

	got := Comments(comments, Filter{UserID: uid})
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Content != "mine" || got[1].Content != "also mine" {
		t.Errorf("unexpected order: %q, %q", got[0].Content, got[1].Content)
	}
}

func TestUsersFilter(t *testing.T) {
	users := []*model.User{
		{Username: "jsmith", DisplayName: "Jordan Smith", Department: "Engineering", Role: model.RoleReviewer},
		{Username: "apatel", DisplayName: "Avni Patel", Department: "engineering", Role: model.RoleUser},
		{Username: "ops-bot", Email: "ops@example.com", Department: "Operations", Role: model.RoleUser},
	}

	// Department comparison ignores case
	got := Users(users, Filter{Department: "ENGINEERING"})
	if len(got) != 2 {
		t.Fatalf("expected 2 engineering users, got %d", len(got))
	}

	got = Users(users, Filter{Role: model.RoleReviewer})
	if len(got) != 1 || got[0].Username != "jsmith" {
		t.Fatalf("expected jsmith, got %d results", len(got))
	}

	// Free text reaches the email field
	got = Users(users, Filter{Query: "ops@example"})
	if len(got) != 1 || got[0].Username != "ops-bot" {
		t.Fatalf("expected ops-bot, got %d results", len(got))
	}
}
