// Package redis keeps users' link collections in Redis lists, one list of
// JSON records per user.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

const keyPrefix = "links:"

func linksKey(username string) string {
	return keyPrefix + username
}

type linkRecord struct {
	OriginalURL string     `json:"original_url"`
	CreatedBy   string     `json:"created_by"`
	WantsQRCode bool       `json:"wants_qr_code"`
	CustomSlug  *string    `json:"custom_slug,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Slug        string     `json:"slug"`
	QRCode      string     `json:"qr,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Clicks      int64      `json:"clicks"`
}

func newLinkRecord(link entity.Link) linkRecord {
	return linkRecord{
		OriginalURL: link.OriginalURL,
		CreatedBy:   link.CreatedBy,
		WantsQRCode: link.WantsQRCode,
		CustomSlug:  link.CustomSlug,
		ExpiresAt:   link.ExpiresAt,
		Slug:        link.Slug,
		QRCode:      link.QRCode,
		CreatedAt:   link.CreatedAt,
		Clicks:      link.Clicks,
	}
}

func (r linkRecord) toEntity() entity.Link {
	return entity.Link{
		ShortenedURL: entity.ShortenedURL{
			OriginalURL: r.OriginalURL,
			CreatedBy:   r.CreatedBy,
			WantsQRCode: r.WantsQRCode,
			CustomSlug:  r.CustomSlug,
			ExpiresAt:   r.ExpiresAt,
		},
		Slug:      r.Slug,
		QRCode:    r.QRCode,
		CreatedAt: r.CreatedAt,
		Clicks:    r.Clicks,
	}
}

func encodeLinks(links []entity.Link) ([]any, error) {
	values := make([]any, 0, len(links))
	for _, link := range links {
		b, err := json.Marshal(newLinkRecord(link))
		if err != nil {
			return nil, err
		}
		values = append(values, b)
	}
	return values, nil
}

type LinkRepository struct {
	client redis.UniversalClient
}

func NewLinkRepository(client redis.UniversalClient) *LinkRepository {
	return &LinkRepository{client: client}
}

func (r *LinkRepository) Append(ctx context.Context, username string, link entity.Link) error {
	const op = "adapter.repository.redis.LinkRepository.Append"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	values, err := encodeLinks([]entity.Link{link})
	if err != nil {
		return fmt.Errorf("%s: failed to encode link: %w", op, err)
	}

	if err := r.client.RPush(ctx, linksKey(username), values...).Err(); err != nil {
		return fmt.Errorf("%s: failed to push link: %w", op, err)
	}

	return nil
}

func (r *LinkRepository) List(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "adapter.repository.redis.LinkRepository.List"

	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	raw, err := r.client.LRange(ctx, linksKey(username), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read links: %w", op, err)
	}

	links := make([]entity.Link, 0, len(raw))
	for _, s := range raw {
		var rec linkRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("%s: failed to decode link: %w", op, err)
		}
		links = append(links, rec.toEntity())
	}

	return links, nil
}

// Replace swaps the user's list inside a MULTI/EXEC block.
func (r *LinkRepository) Replace(ctx context.Context, username string, links []entity.Link) error {
	const op = "adapter.repository.redis.LinkRepository.Replace"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	values, err := encodeLinks(links)
	if err != nil {
		return fmt.Errorf("%s: failed to encode links: %w", op, err)
	}

	key := linksKey(username)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: failed to replace links: %w", op, err)
	}

	return nil
}
