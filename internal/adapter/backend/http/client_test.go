package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/", opts...)
	require.NoError(t, err)

	return c
}

func TestNewClient(t *testing.T) {
	for _, baseURL := range []string{"", "localhost:8080", "/api", "://bad"} {
		c, err := NewClient(baseURL)

		assert.Error(t, err, baseURL)
		assert.Nil(t, c)
	}
}

func TestClient_PostURL(t *testing.T) {
	slug := "promo"
	expiresAt := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	req := &entity.ShortenedURL{
		OriginalURL: "https://example.com",
		CreatedBy:   "alice",
		WantsQRCode: true,
		CustomSlug:  &slug,
		ExpiresAt:   &expiresAt,
	}

	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/urls", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "req-1", r.Header.Get(middleware.RequestIDHeader))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{
				"original_url":  "https://example.com",
				"created_by":    "alice",
				"wants_qr_code": true,
				"custom_slug":   "promo",
				"expires_at":    "2026-12-01T00:00:00Z",
			}, body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"slug":"promo","qr":"https://sho.rt/qr/promo.png","created_at":"2026-03-01T10:00:00Z"}`))
		}, WithAPIToken("secret"))

		ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

		res, err := c.PostURL(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, &entity.ShortenResult{
			Slug:      "promo",
			QRCode:    "https://sho.rt/qr/promo.png",
			CreatedAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
		}, res)
	})

	t.Run("generated request id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := uuid.Parse(r.Header.Get(middleware.RequestIDHeader))
			assert.NoError(t, err)
			assert.Empty(t, r.Header.Get("Authorization"))

			w.Write([]byte(`{"slug":"x1y2z3","qr":""}`))
		})

		res, err := c.PostURL(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "x1y2z3", res.Slug)
		assert.True(t, res.CreatedAt.IsZero())
	})

	t.Run("status error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"status":"error","message":"slug taken"}`))
		})

		res, err := c.PostURL(context.Background(), req)

		var serr *StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, http.StatusConflict, serr.StatusCode)
		assert.Equal(t, "slug taken", serr.Message)
		assert.Nil(t, res)
	})

	t.Run("status error without body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.PostURL(context.Background(), req)

		var serr *StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "backend responded with status 502", serr.Error())
	})

	t.Run("malformed answer", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"slug":`))
		})

		res, err := c.PostURL(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("timeout", func(t *testing.T) {
		done := make(chan struct{})
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-done:
			case <-r.Context().Done():
			}
		}, WithTimeout(50*time.Millisecond))
		defer close(done)

		res, err := c.PostURL(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestClient_ListLinks(t *testing.T) {
	t.Run("username required", func(t *testing.T) {
		c, err := NewClient("http://localhost")
		require.NoError(t, err)

		links, err := c.ListLinks(context.Background(), "")

		assert.ErrorIs(t, err, entity.ErrUserRequired)
		assert.Nil(t, links)
	})

	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/users/alice@example.com/urls", r.URL.Path)

			w.Write([]byte(`[
				{"original_url":"https://example.com/a","created_by":"alice@example.com","slug":"a","created_at":"2026-03-01T00:00:00Z","clicks":5},
				{"original_url":"https://example.com/b","created_by":"alice@example.com","wants_qr_code":true,"slug":"b","qr":"qr.png","created_at":"2026-03-02T00:00:00Z","clicks":2}
			]`))
		})

		links, err := c.ListLinks(context.Background(), "alice@example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "a", links[0].Slug)
		assert.Equal(t, int64(5), links[0].Clicks)
		assert.Equal(t, "https://example.com/a", links[0].OriginalURL)
		assert.True(t, links[1].WantsQRCode)
		assert.Equal(t, "qr.png", links[1].QRCode)
	})

	t.Run("empty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		links, err := c.ListLinks(context.Background(), "alice")

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("status error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.ListLinks(context.Background(), "alice")

		var serr *StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, http.StatusNotFound, serr.StatusCode)
	})
}
