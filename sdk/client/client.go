// Package client is a small Go client for the IdeaHub HTTP API. It covers
// the submission, voting, commenting, and triage endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config represents the configuration for the IdeaHub client
type Config struct {
	// BaseURL is the base URL of the IdeaHub service
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the IdeaHub service client
type Client struct {
	config *Config
	client *http.Client
	token  string
}

// NewClient creates a new IdeaHub client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken sets the bearer token used on authenticated requests. Login and
// AdminLogin call it automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// User is the account payload returned by the API
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	Department  string    `json:"department,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Media is one attached media reference on an idea
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Idea is the idea payload returned by the API
type Idea struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority,omitempty"`
	Department       string    `json:"department,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Impact           string    `json:"impact,omitempty"`
	Inspiration      string    `json:"inspiration,omitempty"`
	SimilarSolutions string    `json:"similarSolutions,omitempty"`
	AdminNotes       string    `json:"adminNotes,omitempty"`
	AttachmentURL    string    `json:"attachmentUrl,omitempty"`
	MediaURLs        []Media   `json:"mediaUrls,omitempty"`
	Votes            int       `json:"votes"`
	SubmittedByID    string    `json:"submittedById"`
	AssignedToID     string    `json:"assignedToId,omitempty"`
	AssignedRole     string    `json:"assignedRole,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Comment is the comment payload returned by the API
type Comment struct {
	ID        string     `json:"id"`
	IdeaID    string     `json:"ideaId"`
	UserID    string     `json:"userId"`
	Content   string     `json:"content"`
	ParentID  string     `json:"parentId,omitempty"`
	Author    *User      `json:"author,omitempty"`
	Replies   []*Comment `json:"replies,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// IdeaPage is one page of the idea listing
type IdeaPage struct {
	Items      []Idea `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
}

// SessionResponse is returned by the login and register endpoints
type SessionResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// LoginRequest carries credentials for the login endpoints
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account for the register endpoint
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
	Department  string `json:"department,omitempty"`
}

// Register creates an account and stores the returned session token
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Username == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}

	var resp SessionResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/register", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Login authenticates and stores the returned session token
func (c *Client) Login(ctx context.Context, username, password string) (*SessionResponse, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	var resp SessionResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/login", &LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// AdminLogin authenticates against the administrative entry point. Accounts
// without an admin-capable role are rejected with a 403.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*SessionResponse, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	var resp SessionResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/admin/login", &LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// ListIdeasOptions are the filter and pagination parameters for ListIdeas
type ListIdeasOptions struct {
	Query    string
	Status   string
	Category string
	UserID   string
	Page     int
	PageSize int
}

// ListIdeas fetches one page of the idea listing
func (c *Client) ListIdeas(ctx context.Context, opts *ListIdeasOptions) (*IdeaPage, error) {
	endpoint := c.config.BaseURL + "/api/ideas"
	if opts != nil {
		q := url.Values{}
		if opts.Query != "" {
			q.Set("query", opts.Query)
		}
		if opts.Status != "" {
			q.Set("status", opts.Status)
		}
		if opts.Category != "" {
			q.Set("category", opts.Category)
		}
		if opts.UserID != "" {
			q.Set("userId", opts.UserID)
		}
		if opts.Page > 0 {
			q.Set("page", fmt.Sprintf("%d", opts.Page))
		}
		if opts.PageSize > 0 {
			q.Set("pageSize", fmt.Sprintf("%d", opts.PageSize))
		}
		if len(q) > 0 {
			endpoint += "?" + q.Encode()
		}
	}

	var resp IdeaPage
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetIdea fetches one idea by ID
func (c *Client) GetIdea(ctx context.Context, id string) (*Idea, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	var resp Idea
	if err := c.get(ctx, c.config.BaseURL+"/api/ideas/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateIdeaRequest carries a new submission
type CreateIdeaRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Impact           string   `json:"impact,omitempty"`
	Department       string   `json:"department,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Inspiration      string   `json:"inspiration,omitempty"`
	SimilarSolutions string   `json:"similarSolutions,omitempty"`
}

// CreateIdea submits a new idea
func (c *Client) CreateIdea(ctx context.Context, req *CreateIdeaRequest) (*Idea, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Title == "" || req.Description == "" || req.Category == "" {
		return nil, errors.New("title, description, and category are required")
	}

	var resp Idea
	if err := c.post(ctx, c.config.BaseURL+"/api/ideas", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Vote adds one vote to an idea and returns the updated record
func (c *Client) Vote(ctx context.Context, id string) (*Idea, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	var resp Idea
	if err := c.post(ctx, c.config.BaseURL+"/api/ideas/"+id+"/vote", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListComments fetches the comment threads on an idea
func (c *Client) ListComments(ctx context.Context, ideaID string) ([]*Comment, error) {
	if ideaID == "" {
		return nil, errors.New("ideaID is required")
	}

	var resp []*Comment
	if err := c.get(ctx, c.config.BaseURL+"/api/ideas/"+ideaID+"/comments", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddCommentRequest carries a comment body; ParentID makes it a reply
type AddCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

// AddComment posts a comment on an idea
func (c *Client) AddComment(ctx context.Context, ideaID string, req *AddCommentRequest) (*Comment, error) {
	if ideaID == "" {
		return nil, errors.New("ideaID is required")
	}
	if req == nil || req.Content == "" {
		return nil, errors.New("content is required")
	}

	var resp Comment
	if err := c.post(ctx, c.config.BaseURL+"/api/ideas/"+ideaID+"/comments", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReviewItem is one entry of the review queue: the pending idea together
// with its urgency label.
type ReviewItem struct {
	Idea Idea   `json:"idea"`
	SLA  string `json:"sla"`
}

// ReviewQueue fetches the pending ideas with SLA labels. Requires an
// admin-capable session.
func (c *Client) ReviewQueue(ctx context.Context) ([]ReviewItem, error) {
	var resp []ReviewItem
	if err := c.get(ctx, c.config.BaseURL+"/api/ideas/review", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AdvanceStatus moves an idea one step down the review pipeline. Requires
// an admin-capable session.
func (c *Client) AdvanceStatus(ctx context.Context, id string) (*Idea, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	var resp Idea
	if err := c.post(ctx, c.config.BaseURL+"/api/ideas/"+id+"/status/advance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetStatus sets an idea's status directly. Requires an admin-capable
// session.
func (c *Client) SetStatus(ctx context.Context, id, status string) (*Idea, error) {
	if id == "" || status == "" {
		return nil, errors.New("id and status are required")
	}

	body := map[string]string{"status": status}
	var resp Idea
	if err := c.put(ctx, c.config.BaseURL+"/api/ideas/"+id+"/status", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssignRequest routes an idea to a role and optionally a specific user.
// UserID may be a UUID or "email:someone@example.com".
type AssignRequest struct {
	Role   string `json:"role"`
	UserID string `json:"userId,omitempty"`
}

// Assign routes an idea to an assignee. Requires an admin-capable session.
func (c *Client) Assign(ctx context.Context, id string, req *AssignRequest) (*Idea, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if req == nil || req.Role == "" {
		return nil, errors.New("role is required")
	}

	var resp Idea
	if err := c.post(ctx, c.config.BaseURL+"/api/ideas/"+id+"/assign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Metrics is the dashboard counter payload
type Metrics struct {
	TotalIdeas    int            `json:"totalIdeas"`
	TotalUsers    int            `json:"totalUsers"`
	TotalComments int            `json:"totalComments"`
	ByStatus      map[string]int `json:"byStatus"`
	ByCategory    map[string]int `json:"byCategory"`
}

// GetMetrics fetches the dashboard counters. Requires an admin-capable
// session.
func (c *Client) GetMetrics(ctx context.Context) (*Metrics, error) {
	var resp Metrics
	if err := c.get(ctx, c.config.BaseURL+"/api/metrics", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int      `json:"-"`
	Message    string   `json:"message"`
	Details    []string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.send(ctx, http.MethodPost, endpoint, req, resp)
}

// put performs a PUT request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) put(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.send(ctx, http.MethodPut, endpoint, req, resp)
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	return c.send(ctx, http.MethodGet, endpoint, nil, resp)
}

func (c *Client) send(ctx context.Context, method, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body *bytes.Buffer
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	} else {
		body = bytes.NewBuffer(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if resp == nil {
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
