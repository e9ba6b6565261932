package entity

import (
	"errors"
	"time"
)

var (
	// ErrEmptySlug is returned when custom-slug mode is on but no slug was typed.
	ErrEmptySlug = errors.New("custom slug is empty")
	// ErrMissingExpiration is returned when expiration mode is on but no date was picked.
	ErrMissingExpiration = errors.New("expiration date is missing")
)

// SubmissionOptions holds the toggle-gated parts of a shortening request.
// A nil field means the mode is off. A non-nil Expiration holding the zero
// time means the mode is on and no date has been picked yet.
type SubmissionOptions struct {
	CustomSlug *string
	Expiration *time.Time
}

// Validate checks the options as a unit.
func (o SubmissionOptions) Validate() error {
	if o.CustomSlug != nil && *o.CustomSlug == "" {
		return ErrEmptySlug
	}
	if o.Expiration != nil && o.Expiration.IsZero() {
		return ErrMissingExpiration
	}
	return nil
}

// Slug returns the custom slug or an empty string when the mode is off.
func (o SubmissionOptions) Slug() string {
	if o.CustomSlug == nil {
		return ""
	}
	return *o.CustomSlug
}

// ExpiresAt returns the picked expiration or nil.
func (o SubmissionOptions) ExpiresAt() *time.Time {
	if o.Expiration == nil || o.Expiration.IsZero() {
		return nil
	}
	t := *o.Expiration
	return &t
}
