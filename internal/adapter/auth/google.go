package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrUnverifiedEmail is returned when Google reports an email the user has not verified.
var ErrUnverifiedEmail = errors.New("email not verified")

type googleUser struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleProvider signs users in with Google and names them by email.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Identify exchanges the authorization code and returns the user's email.
func (p *GoogleProvider) Identify(ctx context.Context, code string) (string, error) {
	const op = "adapter.auth.GoogleProvider.Identify"

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%s: failed to exchange code: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: failed to get user info: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: user info responded with status %d", op, resp.StatusCode)
	}

	var user googleUser
	if err := render.DecodeJSON(resp.Body, &user); err != nil {
		return "", fmt.Errorf("%s: failed to decode user info: %w", op, err)
	}

	if !user.VerifiedEmail || user.Email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrUnverifiedEmail)
	}

	return user.Email, nil
}
