package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// ErrInvalidRequest is returned when the assembled shortening request does not pass validation.
var ErrInvalidRequest = errors.New("invalid shortening request")

// RequestBuilder assembles the payload sent to the shortening backend.
type RequestBuilder struct {
	validate *validator.Validate
}

func NewRequestBuilder(validate *validator.Validate) *RequestBuilder {
	return &RequestBuilder{validate: validate}
}

// Build assembles a shortening request from the form input. Empty options
// are dropped and the expiration is sent in UTC.
func (b *RequestBuilder) Build(
	ctx context.Context,
	originalURL, username string,
	wantsQRCode bool,
	opts entity.SubmissionOptions,
) (*entity.ShortenedURL, error) {
	const op = "usecase.RequestBuilder.Build"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req := &entity.ShortenedURL{
		OriginalURL: strings.TrimSpace(originalURL),
		CreatedBy:   username,
		WantsQRCode: wantsQRCode,
	}

	if slug := strings.TrimSpace(opts.Slug()); slug != "" {
		req.CustomSlug = &slug
	}

	if expiresAt := opts.ExpiresAt(); expiresAt != nil {
		utc := expiresAt.UTC()
		req.ExpiresAt = &utc
	}

	if err := b.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidRequest, err)
	}

	return req, nil
}
