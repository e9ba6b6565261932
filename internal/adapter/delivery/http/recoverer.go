package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
)

// recoverer turns a panic into a JSON server error and logs it with the request.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			httplog.LogEntrySetField(r.Context(), "panic", slog.StringValue(fmt.Sprint(rec)))
			httplog.LogEntrySetField(r.Context(), "stack", slog.StringValue(string(debug.Stack())))

			if r.Header.Get("Connection") != "Upgrade" {
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, serverErrorResponse)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
