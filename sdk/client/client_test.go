package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/login" {
			t.Errorf("Expected /api/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Username != "casey" || req.Password != "hunter22" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SessionResponse{
			User:  &User{ID: "u1", Username: "casey", Role: "user"},
			Token: "test-token",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.Login(context.Background(), "casey", "hunter22")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "test-token" {
		t.Errorf("Expected token test-token, got %s", resp.Token)
	}
	if client.token != "test-token" {
		t.Error("Expected token to be stored on the client")
	}

	// Wrong password surfaces an APIError
	_, err = client.Login(context.Background(), "casey", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", apiErr.StatusCode)
	}

	// Missing credentials are rejected before any request is made
	if _, err := client.Login(context.Background(), "", ""); err == nil {
		t.Error("Expected error for empty credentials")
	}
}

func TestListIdeas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ideas" {
			t.Errorf("Expected /api/ideas path, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "submitted" {
			t.Errorf("Expected status=submitted, got %s", q.Get("status"))
		}
		if q.Get("page") != "2" {
			t.Errorf("Expected page=2, got %s", q.Get("page"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(IdeaPage{
			Items:      []Idea{{ID: "i1", Title: "Faster onboarding", Status: "submitted"}},
			Page:       2,
			PageSize:   10,
			TotalItems: 11,
			TotalPages: 2,
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	page, err := client.ListIdeas(context.Background(), &ListIdeasOptions{Status: "submitted", Page: 2})
	if err != nil {
		t.Fatalf("ListIdeas failed: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(page.Items))
	}
	if page.Items[0].Title != "Faster onboarding" {
		t.Errorf("Unexpected title %s", page.Items[0].Title)
	}
	if page.TotalPages != 2 {
		t.Errorf("Expected 2 total pages, got %d", page.TotalPages)
	}
}

func TestCreateIdeaSendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer session-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}

		var req CreateIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Idea{
			ID:          "i2",
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Status:      "submitted",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("session-token")

	idea, err := client.CreateIdea(context.Background(), &CreateIdeaRequest{
		Title:       "Self-serve reports",
		Description: "Let teams export their own dashboards without filing a ticket.",
		Category:    "opportunity",
	})
	if err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	if idea.Status != "submitted" {
		t.Errorf("Expected submitted status, got %s", idea.Status)
	}

	// Required fields are validated client-side
	if _, err := client.CreateIdea(context.Background(), &CreateIdeaRequest{Title: "x"}); err == nil {
		t.Error("Expected error for missing fields")
	}
}

func TestAdvanceStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/ideas/i3/status/advance" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Idea{ID: "i3", Status: "in-review"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("admin-token")

	idea, err := client.AdvanceStatus(context.Background(), "i3")
	if err != nil {
		t.Fatalf("AdvanceStatus failed: %v", err)
	}
	if idea.Status != "in-review" {
		t.Errorf("Expected in-review, got %s", idea.Status)
	}
}

func TestSetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Expected PUT request, got %s", r.Method)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if body["status"] != "parked" {
			t.Errorf("Expected parked, got %s", body["status"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Idea{ID: "i4", Status: "parked"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("admin-token")

	idea, err := client.SetStatus(context.Background(), "i4", "parked")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if idea.Status != "parked" {
		t.Errorf("Expected parked, got %s", idea.Status)
	}
}

func TestVote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ideas/i5/vote" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Idea{ID: "i5", Votes: 4})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("session-token")

	idea, err := client.Vote(context.Background(), "i5")
	if err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if idea.Votes != 4 {
		t.Errorf("Expected 4 votes, got %d", idea.Votes)
	}
}

func TestReviewQueue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ideas/review" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		// The server wraps each pending idea in an envelope with its SLA label.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]ReviewItem{
			{Idea: Idea{ID: "i6", Title: "Old one", Status: "submitted"}, SLA: "Overdue"},
			{Idea: Idea{ID: "i7", Title: "Fresh one", Status: "in-review"}, SLA: "3 days left"},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	client.SetToken("session-token")

	items, err := client.ReviewQueue(context.Background())
	if err != nil {
		t.Fatalf("ReviewQueue failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Idea.ID != "i6" || items[0].Idea.Title != "Old one" {
		t.Errorf("First idea did not decode: %+v", items[0].Idea)
	}
	if items[0].SLA != "Overdue" {
		t.Errorf("Expected Overdue, got %s", items[0].SLA)
	}
	if items[1].Idea.Status != "in-review" {
		t.Errorf("Expected in-review, got %s", items[1].Idea.Status)
	}
}
