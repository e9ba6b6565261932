package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRequestBuilder_Build(t *testing.T) {
	builder := NewRequestBuilder(validator.New())

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := builder.Build(ctx, "https://example.com", "alice", false, entity.SubmissionOptions{})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, req)
	})

	tests := []struct {
		name     string
		url      string
		username string
		opts     entity.SubmissionOptions
	}{
		{name: "invalid url", url: "example", username: "alice"},
		{name: "missing user", url: "https://example.com"},
		{name: "slug too long", url: "https://example.com", username: "alice", opts: entity.SubmissionOptions{CustomSlug: ptr("abcdefghi")}},
		{name: "slug with path separator", url: "https://example.com", username: "alice", opts: entity.SubmissionOptions{CustomSlug: ptr("a/b")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := builder.Build(context.Background(), tt.url, tt.username, false, tt.opts)

			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Nil(t, req)
		})
	}

	t.Run("options off", func(t *testing.T) {
		req, err := builder.Build(context.Background(), "  https://example.com  ", "alice", true, entity.SubmissionOptions{})

		require.NoError(t, err)
		assert.Equal(t, &entity.ShortenedURL{
			OriginalURL: "https://example.com",
			CreatedBy:   "alice",
			WantsQRCode: true,
		}, req)
	})

	t.Run("options on", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		expiresAt := time.Date(2026, time.December, 1, 9, 0, 0, 0, loc)

		req, err := builder.Build(context.Background(), "https://example.com", "alice", false, entity.SubmissionOptions{
			CustomSlug: ptr(" promo "),
			Expiration: &expiresAt,
		})

		require.NoError(t, err)
		require.NotNil(t, req.CustomSlug)
		assert.Equal(t, "promo", *req.CustomSlug)
		require.NotNil(t, req.ExpiresAt)
		assert.Equal(t, time.UTC, req.ExpiresAt.Location())
		assert.True(t, expiresAt.Equal(*req.ExpiresAt))
	})

	t.Run("blank slug is dropped", func(t *testing.T) {
		req, err := builder.Build(context.Background(), "https://example.com", "alice", false, entity.SubmissionOptions{
			CustomSlug: ptr("   "),
		})

		require.NoError(t, err)
		assert.Nil(t, req.CustomSlug)
	})
}
