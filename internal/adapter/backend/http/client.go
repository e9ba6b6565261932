// Package http is the client of the shortening backend. It posts shortening
// requests and fetches users' link collections over JSON.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

type Option func(*Client)

// WithAPIToken makes the client send the token as a bearer credential.
func WithAPIToken(token string) Option {
	return func(c *Client) {
		c.apiToken = token
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client. Its timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

type Client struct {
	baseURL    *url.URL
	apiToken   string
	httpClient *http.Client
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	const op = "adapter.backend.http.NewClient"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse base url: %w", op, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url must be absolute: %q", op, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PostURL submits a shortening request and returns the backend's answer.
func (c *Client) PostURL(ctx context.Context, req *entity.ShortenedURL) (*entity.ShortenResult, error) {
	const op = "adapter.backend.http.Client.PostURL"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode request: %w", op, err)
	}

	var res entity.ShortenResult

	if err := c.do(ctx, http.MethodPost, "/api/v1/urls", bytes.NewReader(body), &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &res, nil
}

type linkResponse struct {
	entity.ShortenedURL
	Slug      string    `json:"slug"`
	QRCode    string    `json:"qr"`
	CreatedAt time.Time `json:"created_at"`
	Clicks    int64     `json:"clicks"`
}

func (l linkResponse) toEntity() entity.Link {
	return entity.Link{
		ShortenedURL: l.ShortenedURL,
		Slug:         l.Slug,
		QRCode:       l.QRCode,
		CreatedAt:    l.CreatedAt,
		Clicks:       l.Clicks,
	}
}

// ListLinks fetches the user's collection together with current click counts.
func (c *Client) ListLinks(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "adapter.backend.http.Client.ListLinks"

	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	var res []linkResponse

	path := "/api/v1/users/" + url.PathEscape(username) + "/urls"
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	links := make([]entity.Link, 0, len(res))
	for _, l := range res {
		links = append(links, l.toEntity())
	}

	return links, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, v any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.RequestIDHeader, requestID(ctx))
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := render.DecodeJSON(resp.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response) *StatusError {
	serr := &StatusError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := render.DecodeJSON(io.LimitReader(resp.Body, maxErrorBody), &body); err == nil {
		serr.Message = body.Message
	}

	return serr
}

// requestID forwards the id of the inbound request, if there is one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
