package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
	"github.com/vadimbarashkov/url-shortener-web/internal/usecase"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// shortenRequest is the submission form as filled in by the user.
type shortenRequest struct {
	URL               string     `json:"url" validate:"max=2048"`
	CustomSlugEnabled bool       `json:"custom_slug_enabled"`
	CustomSlug        string     `json:"custom_slug"`
	QRCodeEnabled     bool       `json:"qr_code_enabled"`
	ExpirationEnabled bool       `json:"expiration_enabled"`
	Expiration        *time.Time `json:"expiration"`
}

func (r shortenRequest) toFormInput() usecase.FormInput {
	return usecase.FormInput{
		URL:               r.URL,
		CustomSlugEnabled: r.CustomSlugEnabled,
		CustomSlug:        r.CustomSlug,
		QRCodeEnabled:     r.QRCodeEnabled,
		ExpirationEnabled: r.ExpirationEnabled,
		Expiration:        r.Expiration,
	}
}

// formStateResponse mirrors what the form shows after the submission.
type formStateResponse struct {
	URL               string     `json:"url"`
	CustomSlugEnabled bool       `json:"custom_slug_enabled"`
	CustomSlug        string     `json:"custom_slug"`
	QRCodeEnabled     bool       `json:"qr_code_enabled"`
	ExpirationEnabled bool       `json:"expiration_enabled"`
	Expiration        *time.Time `json:"expiration"`
	ExpirationLabel   string     `json:"expiration_label"`
	Submitting        bool       `json:"submitting"`
	Error             string     `json:"error"`
	SlugError         string     `json:"slug_error"`
}

func toFormStateResponse(s usecase.FormState) formStateResponse {
	return formStateResponse{
		URL:               s.URL,
		CustomSlugEnabled: s.CustomSlugEnabled,
		CustomSlug:        s.CustomSlug,
		QRCodeEnabled:     s.QRCodeEnabled,
		ExpirationEnabled: s.ExpirationEnabled,
		Expiration:        s.Expiration,
		ExpirationLabel:   s.ExpirationLabel,
		Submitting:        s.Submitting,
		Error:             s.Error,
		SlugError:         s.SlugError,
	}
}

type linkResponse struct {
	Slug        string     `json:"slug"`
	OriginalURL string     `json:"original_url"`
	CreatedBy   string     `json:"created_by"`
	WantsQRCode bool       `json:"wants_qr_code"`
	QRCode      string     `json:"qr,omitempty"`
	CustomSlug  *string    `json:"custom_slug,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toLinkResponse(l entity.Link) linkResponse {
	return linkResponse{
		Slug:        l.Slug,
		OriginalURL: l.OriginalURL,
		CreatedBy:   l.CreatedBy,
		WantsQRCode: l.WantsQRCode,
		QRCode:      l.QRCode,
		CustomSlug:  l.CustomSlug,
		ExpiresAt:   l.ExpiresAt,
		Clicks:      l.Clicks,
		CreatedAt:   l.CreatedAt,
	}
}

type linksResponse struct {
	Links []linkResponse `json:"links"`
}

func toLinksResponse(links []entity.Link) linksResponse {
	resp := linksResponse{Links: make([]linkResponse, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, toLinkResponse(l))
	}
	return resp
}

// formResponse is the answer to a form submission, successful or not.
type formResponse struct {
	Status        string                `json:"status"`
	Message       string                `json:"message,omitempty"`
	Errors        []validationError     `json:"errors,omitempty"`
	SignInURL     string                `json:"sign_in_url,omitempty"`
	Form          formStateResponse     `json:"form"`
	Preview       string                `json:"preview"`
	Link          *linkResponse         `json:"link,omitempty"`
	Notifications []entity.Notification `json:"notifications"`
}

func newFormResponse(outcome *usecase.FormOutcome, notifications []entity.Notification) formResponse {
	resp := formResponse{
		Status:        statusSuccess,
		Notifications: notifications,
	}

	if resp.Notifications == nil {
		resp.Notifications = []entity.Notification{}
	}

	if outcome == nil {
		return resp
	}

	resp.Form = toFormStateResponse(outcome.State)
	resp.Preview = outcome.Preview

	if outcome.Link != nil {
		link := toLinkResponse(*outcome.Link)
		resp.Link = &link
	}

	return resp
}

type previewResponse struct {
	Preview string `json:"preview"`
}

type userResponse struct {
	Username string `json:"username,omitempty"`
	SignedIn bool   `json:"signed_in"`
}

type chartGradient struct {
	FromOpacity float64 `json:"from_opacity"`
	ToOpacity   float64 `json:"to_opacity"`
}

// chartHints tells the frontend how to draw the click series.
type chartHints struct {
	Type     string        `json:"type"`
	XKey     string        `json:"x_key"`
	YKey     string        `json:"y_key"`
	Gradient chartGradient `json:"gradient"`
	Tooltip  string        `json:"tooltip"`
}

var defaultChartHints = chartHints{
	Type: "area",
	XKey: "date",
	YKey: "clicks",
	Gradient: chartGradient{
		FromOpacity: 0.8,
		ToOpacity:   0,
	},
	Tooltip: "Clicks",
}

type statsResponse struct {
	TotalLinks    int                 `json:"total_links"`
	TotalClicks   int64               `json:"total_clicks"`
	AverageClicks float64             `json:"average_clicks"`
	AverageLabel  string              `json:"average_label"`
	Series        []entity.ChartPoint `json:"series"`
	Chart         chartHints          `json:"chart"`
}

func toStatsResponse(s *usecase.Summary) statsResponse {
	series := s.Series
	if series == nil {
		series = []entity.ChartPoint{}
	}

	return statsResponse{
		TotalLinks:    s.TotalLinks,
		TotalClicks:   s.TotalClicks,
		AverageClicks: s.AverageClicks,
		AverageLabel:  s.AverageLabel(),
		Series:        series,
		Chart:         defaultChartHints,
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Errors    []validationError `json:"errors,omitempty"`
	SignInURL string            `json:"sign_in_url,omitempty"`
}

var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}

	backendErrorResponse = errorResponse{
		Status:  statusError,
		Message: "shortening service unavailable",
	}

	invalidOAuthStateResponse = errorResponse{
		Status:  statusError,
		Message: "invalid oauth state",
	}

	signInUnavailableResponse = errorResponse{
		Status:  statusError,
		Message: "sign-in is not configured",
	}

	signInFailedResponse = errorResponse{
		Status:  statusError,
		Message: "sign-in failed",
	}
)

func authRequiredResponse() errorResponse {
	return errorResponse{
		Status:    statusError,
		Message:   "authentication required",
		SignInURL: signInPath,
	}
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
