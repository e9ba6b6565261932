package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
	"github.com/vadimbarashkov/url-shortener-web/internal/usecase"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/urls", func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"slug":       "x1y2z3",
			"qr":         "https://sho.rt/qr/x1y2z3.png",
			"created_at": "2026-03-01T10:00:00Z",
		})
	})
	mux.HandleFunc("GET /api/v1/users/{username}/urls", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, []map[string]any{
			{"original_url": "https://a.example", "created_by": "alice", "slug": "a", "clicks": 5, "created_at": "2026-03-01T10:00:00Z"},
			{"original_url": "https://b.example", "created_by": "alice", "slug": "b", "clicks": 10, "created_at": "2026-03-03T10:00:00Z"},
			{"original_url": "https://c.example", "created_by": "alice", "slug": "c", "clicks": 2, "created_at": "2026-03-02T10:00:00Z"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestRun(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		assert.ErrorIs(t, run(context.Background(), nil, &bytes.Buffer{}), errUsage)
		assert.ErrorIs(t, run(context.Background(), []string{"delete"}, &bytes.Buffer{}), errUsage)
	})

	t.Run("shorten without user", func(t *testing.T) {
		srv := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"shorten", "-backend", srv.URL, "-signin", "https://sho.rt/login", "-url", "https://example.com",
		}, &out)

		assert.ErrorIs(t, err, usecase.ErrAuthRequired)
		assert.Contains(t, out.String(), "Sign in to shorten URLs: https://sho.rt/login")
	})

	t.Run("shorten invalid url", func(t *testing.T) {
		srv := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"shorten", "-backend", srv.URL, "-user", "alice", "-url", "not a url",
		}, &out)

		assert.ErrorIs(t, err, usecase.ErrValidation)
		assert.Contains(t, out.String(), "[error] Error: "+usecase.MsgEnterValidURL)
	})

	t.Run("shorten", func(t *testing.T) {
		srv := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"shorten", "-backend", srv.URL, "-base", "https://sho.rt/", "-user", "alice", "-url", "https://example.com", "-qr",
		}, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "[success] Success: "+usecase.MsgShortenSucceeded)
		assert.Contains(t, out.String(), "https://example.com -> https://sho.rt/x1y2z3")
		assert.Contains(t, out.String(), "QR code: https://sho.rt/qr/x1y2z3.png")
	})

	t.Run("stats", func(t *testing.T) {
		srv := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{"stats", "-backend", srv.URL, "-user", "alice"}, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Total links:    3")
		assert.Contains(t, out.String(), "Total clicks:   17")
		assert.Contains(t, out.String(), "Average clicks: 5.7")
	})

	t.Run("stats without user", func(t *testing.T) {
		var out bytes.Buffer

		err := run(context.Background(), []string{"stats"}, &out)

		assert.ErrorIs(t, err, usecase.ErrAuthRequired)
		assert.Contains(t, out.String(), "Sign in to see your stats")
	})
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		points []entity.ChartPoint
		want   string
	}{
		{name: "empty", points: nil, want: ""},
		{name: "no clicks", points: []entity.ChartPoint{{Clicks: 0}, {Clicks: 0}}, want: "▁▁"},
		{name: "negative clicks", points: []entity.ChartPoint{{Clicks: -3}, {Clicks: 7}}, want: "▁█"},
		{name: "all negative", points: []entity.ChartPoint{{Clicks: -1}}, want: "▁"},
		{name: "scaled", points: []entity.ChartPoint{{Clicks: 5}, {Clicks: 2}, {Clicks: 10}}, want: "▄▂█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sparkline(tt.points))
		})
	}
}
