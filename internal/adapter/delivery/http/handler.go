package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/auth"
	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/notify"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
	"github.com/vadimbarashkov/url-shortener-web/internal/usecase"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type formUseCase interface {
	SubmitForm(ctx context.Context, in usecase.FormInput, notifier usecase.Notifier) (*usecase.FormOutcome, error)
	Preview(slug string) string
}

type linkUseCase interface {
	List(ctx context.Context, username string) ([]entity.Link, error)
	Sync(ctx context.Context, username string) ([]entity.Link, error)
}

type dashboard interface {
	Summary(ctx context.Context, username string) (*usecase.Summary, error)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

type linkHandler struct {
	forms    formUseCase
	links    linkUseCase
	stats    dashboard
	validate *validator.Validate
}

func newLinkHandler(forms formUseCase, links linkUseCase, stats dashboard, validate *validator.Validate) *linkHandler {
	return &linkHandler{
		forms:    forms,
		links:    links,
		stats:    stats,
		validate: validate,
	}
}

func (h *linkHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	recorder := notify.NewRecorder()
	notifier := notify.Multi{recorder, notify.NewLogger(httplog.LogEntry(r.Context()))}

	outcome, err := h.forms.SubmitForm(r.Context(), req.toFormInput(), notifier)
	resp := newFormResponse(outcome, recorder.Notifications())

	var verr *usecase.ValidationError

	switch {
	case err == nil:
		render.Status(r, http.StatusCreated)
	case errors.As(err, &verr):
		resp.Status = statusError
		resp.Message = "validation error"
		resp.Errors = []validationError{{Field: verr.Field, Message: verr.Message}}
		render.Status(r, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPastExpiration):
		resp.Status = statusError
		resp.Message = "validation error"
		resp.Errors = []validationError{{Field: usecase.FieldExpiration, Message: usecase.ErrPastExpiration.Error()}}
		render.Status(r, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAuthRequired):
		resp.Status = statusError
		resp.Message = "authentication required"
		resp.SignInURL = signInPath
		render.Status(r, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSubmitFailed):
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		resp.Status = statusError
		resp.Message = usecase.MsgSomethingWrong
		render.Status(r, http.StatusBadGateway)
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.JSON(w, r, resp)
}

func (h *linkHandler) previewLink(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, previewResponse{
		Preview: h.forms.Preview(r.URL.Query().Get("slug")),
	})
}

func (h *linkHandler) listLinks(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	links, err := h.links.List(r.Context(), user.Username)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.JSON(w, r, toLinksResponse(links))
}

func (h *linkHandler) syncLinks(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	links, err := h.links.Sync(r.Context(), user.Username)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, backendErrorResponse)
		return
	}

	render.JSON(w, r, toLinksResponse(links))
}

func (h *linkHandler) getStats(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	summary, err := h.stats.Summary(r.Context(), user.Username)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.JSON(w, r, toStatsResponse(summary))
}
