package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/auth"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

const authCookieName = "auth_token"

type sessionManager interface {
	Issue(username string) (string, time.Time, error)
	Parse(token string) (entity.User, error)
}

// sessionToken returns the bearer token of the request, falling back to the session cookie.
func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if c, err := r.Cookie(authCookieName); err == nil {
		return c.Value
	}

	return ""
}

// withSession puts the signed-in user into the request context. Requests
// without a valid token go on as anonymous.
func withSession(sessions sessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sessions.Parse(token)
			if err != nil {
				httplog.LogEntrySetField(r.Context(), "session_err", slog.StringValue(err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			httplog.LogEntrySetField(r.Context(), "user", slog.StringValue(user.Username))
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.UserFromContext(r.Context()).SignedIn {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, authRequiredResponse())
			return
		}

		next.ServeHTTP(w, r)
	})
}
