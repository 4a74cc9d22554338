// Package client is a thin HTTP client for the blog backend API. It
// translates non-success status codes into a small typed error
// taxonomy and performs no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "blog-client/1.0"
	apiPrefix        = "/api/v1"
)

// Client talks to the blog backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a Client for the API at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Author is an author as returned by the API.
type Author struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorSummary is the author block nested in post responses.
type AuthorSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// Post is a post as returned by the API.
type Post struct {
	ID          string         `json:"id"`
	AuthorID    string         `json:"author_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
	Author      *AuthorSummary `json:"author,omitempty"`
}

// CreateAuthorRequest is the payload for CreateAuthor.
type CreateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RenameAuthorRequest is the payload for RenameAuthor.
type RenameAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreatePostRequest is the payload for CreatePost.
type CreatePostRequest struct {
	AuthorID    string `json:"author_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// UpdatePostRequest is the payload for UpdatePost.
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// ListOptions controls pagination, ordering and search for list calls.
// The zero value uses the server defaults.
type ListOptions struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

func (o ListOptions) query() map[string]string {
	params := make(map[string]string)
	if o.Page > 0 {
		params["page"] = strconv.Itoa(o.Page)
	}
	if o.PageSize > 0 {
		params["page_size"] = strconv.Itoa(o.PageSize)
	}
	if o.OrderBy != "" {
		params["order_by"] = o.OrderBy
	}
	if o.OrderDir != "" {
		params["order_dir"] = o.OrderDir
	}
	if o.Search != "" {
		params["search"] = o.Search
	}
	return params
}

// ListMeta carries pagination metadata from list responses.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// envelope mirrors the API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorInfo      `json:"error"`
	Meta    *ListMeta       `json:"meta"`
}

type errorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// CreateAuthor creates an author.
func (c *Client) CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodPost, "/blog/authors", nil, req, &author, nil); err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAuthor fetches an author by id.
func (c *Client) GetAuthor(ctx context.Context, id string) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodGet, "/blog/authors/"+url.PathEscape(id), nil, nil, &author, nil); err != nil {
		return nil, err
	}
	return &author, nil
}

// ListAuthors lists authors.
func (c *Client) ListAuthors(ctx context.Context, opts ListOptions) ([]Author, *ListMeta, error) {
	var authors []Author
	var meta ListMeta
	if err := c.do(ctx, http.MethodGet, "/blog/authors", opts.query(), nil, &authors, &meta); err != nil {
		return nil, nil, err
	}
	return authors, &meta, nil
}

// RenameAuthor changes an author's name.
func (c *Client) RenameAuthor(ctx context.Context, id string, req RenameAuthorRequest) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodPut, "/blog/authors/"+url.PathEscape(id), nil, req, &author, nil); err != nil {
		return nil, err
	}
	return &author, nil
}

// DeleteAuthor deletes an author and all their posts.
func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blog/authors/"+url.PathEscape(id), nil, nil, nil, nil)
}

// CreatePost creates a post.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/blog/posts", nil, req, &post, nil); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost fetches a post by id, including the author summary.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/blog/posts/"+url.PathEscape(id), nil, nil, &post, nil); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts lists posts.
func (c *Client) ListPosts(ctx context.Context, opts ListOptions) ([]Post, *ListMeta, error) {
	var posts []Post
	var meta ListMeta
	if err := c.do(ctx, http.MethodGet, "/blog/posts", opts.query(), nil, &posts, &meta); err != nil {
		return nil, nil, err
	}
	return posts, &meta, nil
}

// ListPostsByAuthor lists the posts of one author.
func (c *Client) ListPostsByAuthor(ctx context.Context, authorID string, opts ListOptions) ([]Post, *ListMeta, error) {
	var posts []Post
	var meta ListMeta
	path := "/blog/authors/" + url.PathEscape(authorID) + "/posts"
	if err := c.do(ctx, http.MethodGet, path, opts.query(), nil, &posts, &meta); err != nil {
		return nil, nil, err
	}
	return posts, &meta, nil
}

// UpdatePost edits a post's title, description and content.
func (c *Client) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/blog/posts/"+url.PathEscape(id), nil, req, &post, nil); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blog/posts/"+url.PathEscape(id), nil, nil, nil, nil)
}

// do executes one request and decodes the response envelope into out
// and meta (either may be nil).
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any, meta *ListMeta) error {
	u, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return translateError(httpResp, respBody)
	}

	if out == nil && meta == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	if meta != nil && env.Meta != nil {
		*meta = *env.Meta
	}
	return nil
}

// translateError maps a non-success response onto the error taxonomy.
func translateError(resp *http.Response, body []byte) error {
	message := ""
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		message = env.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &NotFoundError{Message: message}
	case http.StatusBadRequest:
		return &BadRequestError{Message: message, Body: body}
	case http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}
}

func (c *Client) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL + apiPrefix + path)
	if err != nil {
		return "", fmt.Errorf("building URL: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
