package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

func TestLinkRecord(t *testing.T) {
	slug := "promo"
	expiresAt := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	link := entity.Link{
		ShortenedURL: entity.ShortenedURL{
			OriginalURL: "https://example.com",
			CreatedBy:   "alice",
			WantsQRCode: true,
			CustomSlug:  &slug,
			ExpiresAt:   &expiresAt,
		},
		Slug:      "promo",
		QRCode:    "qr.png",
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Clicks:    3,
	}

	values, err := encodeLinks([]entity.Link{link})
	require.NoError(t, err)
	require.Len(t, values, 1)

	assert.JSONEq(t, `{
		"original_url": "https://example.com",
		"created_by": "alice",
		"wants_qr_code": true,
		"custom_slug": "promo",
		"expires_at": "2026-04-01T00:00:00Z",
		"slug": "promo",
		"qr": "qr.png",
		"created_at": "2026-03-01T00:00:00Z",
		"clicks": 3
	}`, string(values[0].([]byte)))

	assert.Equal(t, link, newLinkRecord(link).toEntity())
	assert.Equal(t, "links:alice", linksKey("alice"))
}

func TestLinkRepository_UsernameRequired(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() {
		client.Close()
	})

	repo := NewLinkRepository(client)

	assert.ErrorIs(t, repo.Append(context.Background(), "", entity.Link{}), entity.ErrUserRequired)
	assert.ErrorIs(t, repo.Replace(context.Background(), "", nil), entity.ErrUserRequired)

	_, err := repo.List(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrUserRequired)
}
