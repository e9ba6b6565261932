package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/auth"
)

const (
	signInPath      = "/api/v1/auth/login"
	stateCookieName = "oauth_state"
	stateTTL        = 10 * time.Minute
)

type identityProvider interface {
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (string, error)
}

type authHandler struct {
	identity       identityProvider
	sessions       sessionManager
	secureCookies  bool
	afterSignInURL string
}

func newAuthHandler(identity identityProvider, sessions sessionManager, secureCookies bool, afterSignInURL string) *authHandler {
	return &authHandler{
		identity:       identity,
		sessions:       sessions,
		secureCookies:  secureCookies,
		afterSignInURL: afterSignInURL,
	}
}

func (h *authHandler) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	if h.identity == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, signInUnavailableResponse)
		return
	}

	state, err := gonanoid.New()
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	http.SetCookie(w, h.cookie(stateCookieName, state, time.Now().Add(stateTTL)))
	http.Redirect(w, r, h.identity.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *authHandler) callback(w http.ResponseWriter, r *http.Request) {
	if h.identity == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, signInUnavailableResponse)
		return
	}

	state, err := r.Cookie(stateCookieName)
	if err != nil || state.Value == "" || r.URL.Query().Get("state") != state.Value {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidOAuthStateResponse)
		return
	}

	http.SetCookie(w, h.cookie(stateCookieName, "", time.Unix(0, 0)))

	username, err := h.identity.Identify(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, signInFailedResponse)
		return
	}

	token, expiresAt, err := h.sessions.Issue(username)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	http.SetCookie(w, h.cookie(authCookieName, token, expiresAt))
	http.Redirect(w, r, h.afterSignInURL, http.StatusSeeOther)
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie(authCookieName, "", time.Unix(0, 0)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *authHandler) me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	render.JSON(w, r, userResponse{
		Username: user.Username,
		SignedIn: user.SignedIn,
	})
}
