// Package entity defines the entities and errors used in the application.
// It includes the shortening request sent to the backend, the link record
// kept in the user's collection, and the values derived from it for the
// stats dashboard.
package entity

import (
	"errors"
	"time"
)

// MaxCustomSlugLength is the longest custom slug a user can type.
const MaxCustomSlugLength = 8

var (
	// ErrLinkExists is returned when a link with the same slug is already in the user's collection.
	ErrLinkExists = errors.New("link exists")
	// ErrUserRequired is returned when a collection is addressed without a username.
	ErrUserRequired = errors.New("username required")
)

// ShortenedURL is the shortening request assembled on the client before the
// backend assigns the final slug and QR reference.
type ShortenedURL struct {
	OriginalURL string     `json:"original_url" validate:"required,url"`
	CreatedBy   string     `json:"created_by" validate:"required"`
	WantsQRCode bool       `json:"wants_qr_code"`
	CustomSlug  *string    `json:"custom_slug,omitempty" validate:"omitempty,min=1,max=8,excludesall=/?#"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ShortenResult is what the backend answers for an accepted shortening request.
type ShortenResult struct {
	Slug      string    `json:"slug"`
	QRCode    string    `json:"qr"`
	CreatedAt time.Time `json:"created_at"`
}

// Link is a shortened URL after the backend accepted it.
type Link struct {
	ShortenedURL
	Slug      string    // Slug is the backend-assigned path segment.
	QRCode    string    // QRCode references the QR asset, empty when none was requested.
	CreatedAt time.Time // CreatedAt is when the link was created.
	Clicks    int64     // Clicks is the running click count reported by the backend.
}

// NewLink merges the backend answer into the request it was issued for.
func NewLink(req ShortenedURL, res ShortenResult) Link {
	return Link{
		ShortenedURL: req,
		Slug:         res.Slug,
		QRCode:       res.QRCode,
		CreatedAt:    res.CreatedAt,
	}
}
