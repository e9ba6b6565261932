package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// User-facing messages of the submission form.
const (
	MsgEnterURL          = "Please enter a URL"
	MsgEnterValidURL     = "Please enter a valid URL"
	MsgEnterValidSlug    = "Please enter a valid slug"
	MsgSelectExpiration  = "Please select an expiration date"
	MsgSomethingWrong    = "Something went wrong. Please try again."
	MsgShortenFailed     = "Failed to shorten URL. Please try again."
	MsgShortenSucceeded  = "URL shortened successfully!"
	slugPlaceholder      = "your-custom-slug"
	titleError           = "Error"
	titleSuccess         = "Success"
	expirationDateLayout = "January"
)

var (
	// ErrAuthRequired is returned when a submission is attempted without a signed-in user.
	ErrAuthRequired = errors.New("authentication required")
	// ErrSubmitInProgress is returned when a submission starts while another one is running.
	ErrSubmitInProgress = errors.New("submission in progress")
	// ErrSubmitFailed is returned when building or posting the shortening request fails.
	ErrSubmitFailed = errors.New("submission failed")
	// ErrPastExpiration is returned when an expiration that is not in the future is selected.
	ErrPastExpiration = errors.New("expiration date must be in the future")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")
)

// Form fields that can carry a validation error.
const (
	FieldURL        = "url"
	FieldCustomSlug = "custom_slug"
	FieldExpiration = "expiration"
)

// ValidationError is a client-side validation failure shown next to a field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type requestBuilder interface {
	Build(ctx context.Context, originalURL, username string, wantsQRCode bool, opts entity.SubmissionOptions) (*entity.ShortenedURL, error)
}

type urlPoster interface {
	PostURL(ctx context.Context, req *entity.ShortenedURL) (*entity.ShortenResult, error)
}

type userProvider interface {
	CurrentUser(ctx context.Context) entity.User
}

// Notifier dispatches notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification)
}

// FormState is a snapshot of the submission form.
type FormState struct {
	URL               string
	CustomSlugEnabled bool
	CustomSlug        string
	QRCodeEnabled     bool
	ExpirationEnabled bool
	Expiration        *time.Time
	ExpirationLabel   string
	Submitting        bool
	Error             string
	SlugError         string
}

// Options returns the toggle-gated options of the state.
func (s FormState) Options() entity.SubmissionOptions {
	var opts entity.SubmissionOptions

	if s.CustomSlugEnabled {
		slug := s.CustomSlug
		opts.CustomSlug = &slug
	}

	if s.ExpirationEnabled {
		var at time.Time
		if s.Expiration != nil {
			at = *s.Expiration
		}
		opts.Expiration = &at
	}

	return opts
}

type formConfig struct {
	notifier       Notifier
	onAuthRequired func(ctx context.Context)
	logger         *slog.Logger
	previewBaseURL string
	now            func() time.Time
	validate       *validator.Validate
}

// FormOption configures a SubmissionForm.
type FormOption func(*formConfig)

// WithNotifier sets where notifications go. By default they are dropped.
func WithNotifier(n Notifier) FormOption {
	return func(c *formConfig) {
		c.notifier = n
	}
}

// WithAuthRequired sets the callback run when a submission needs a signed-in user.
func WithAuthRequired(fn func(ctx context.Context)) FormOption {
	return func(c *formConfig) {
		c.onAuthRequired = fn
	}
}

func WithLogger(logger *slog.Logger) FormOption {
	return func(c *formConfig) {
		c.logger = logger
	}
}

// WithPreviewBaseURL sets the base URL used to preview the short link.
func WithPreviewBaseURL(baseURL string) FormOption {
	return func(c *formConfig) {
		c.previewBaseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithClock(now func() time.Time) FormOption {
	return func(c *formConfig) {
		c.now = now
	}
}

func WithValidator(validate *validator.Validate) FormOption {
	return func(c *formConfig) {
		c.validate = validate
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, entity.Notification) {}

// SubmissionForm collects a long URL with its options and submits it to the
// shortening backend. It is safe for concurrent use.
type SubmissionForm struct {
	mu    sync.Mutex
	state FormState

	builder requestBuilder
	poster  urlPoster
	store   linkStore
	users   userProvider
	cfg     formConfig
}

func NewSubmissionForm(
	builder requestBuilder,
	poster urlPoster,
	store linkStore,
	users userProvider,
	opts ...FormOption,
) *SubmissionForm {
	cfg := formConfig{
		notifier: nopNotifier{},
		logger:   slog.Default(),
		now:      time.Now,
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &SubmissionForm{
		builder: builder,
		poster:  poster,
		store:   store,
		users:   users,
		cfg:     cfg,
	}
}

// State returns a snapshot of the form.
func (f *SubmissionForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.state
	if state.Expiration != nil {
		t := *state.Expiration
		state.Expiration = &t
	}
	return state
}

func (f *SubmissionForm) SetURL(rawURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.URL = rawURL
}

func (f *SubmissionForm) EnableCustomSlug(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.CustomSlugEnabled = enabled
	f.clearOptionErrors()
}

// SetCustomSlug sets the slug, keeping at most entity.MaxCustomSlugLength characters.
func (f *SubmissionForm) SetCustomSlug(slug string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if runes := []rune(slug); len(runes) > entity.MaxCustomSlugLength {
		slug = string(runes[:entity.MaxCustomSlugLength])
	}

	f.state.CustomSlug = slug
	f.clearOptionErrors()
}

func (f *SubmissionForm) EnableQRCode(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.QRCodeEnabled = enabled
}

func (f *SubmissionForm) EnableExpiration(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.ExpirationEnabled = enabled
	f.clearOptionErrors()
}

// SelectExpiration picks the expiration date. Dates that are not strictly in
// the future are rejected and the previous selection is kept.
func (f *SubmissionForm) SelectExpiration(at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !at.After(f.cfg.now()) {
		return ErrPastExpiration
	}

	f.setExpiration(&at)
	return nil
}

func (f *SubmissionForm) ClearExpiration() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setExpiration(nil)
}

// Preview returns the short link the current slug would produce.
func (f *SubmissionForm) Preview() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	slug := f.state.CustomSlug
	if slug == "" {
		slug = slugPlaceholder
	}
	return f.cfg.previewBaseURL + "/" + slug
}

// Submit validates the form and, when it passes and the user is signed in,
// builds and posts the shortening request. On success the new link is
// appended to the user's collection and the form is reset.
func (f *SubmissionForm) Submit(ctx context.Context) (*entity.Link, error) {
	const op = "usecase.SubmissionForm.Submit"

	f.mu.Lock()

	if f.state.Submitting {
		f.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrSubmitInProgress)
	}

	if verr := f.validateState(); verr != nil {
		if verr.Field == FieldURL {
			f.state.Error = verr.Message
		} else {
			f.state.SlugError = verr.Message
		}
		f.mu.Unlock()

		f.notify(ctx, entity.VariantError, titleError, verr.Message)
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	user := f.users.CurrentUser(ctx)
	if !user.SignedIn {
		f.mu.Unlock()

		if f.cfg.onAuthRequired != nil {
			f.cfg.onAuthRequired(ctx)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}

	f.state.Error = ""
	f.state.SlugError = ""
	f.state.Submitting = true
	input := f.state
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.state.Submitting = false
		f.mu.Unlock()
	}()

	link, err := f.shorten(ctx, user, input)
	if err != nil {
		f.cfg.logger.ErrorContext(ctx, "failed to shorten url",
			slog.String("op", op),
			slog.String("url", input.URL),
			slog.Any("err", err),
		)

		f.mu.Lock()
		f.state.Error = MsgSomethingWrong
		f.mu.Unlock()

		f.notify(ctx, entity.VariantError, titleError, MsgShortenFailed)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSubmitFailed, err)
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	f.notify(ctx, entity.VariantSuccess, titleSuccess, MsgShortenSucceeded)
	return link, nil
}

func (f *SubmissionForm) shorten(ctx context.Context, user entity.User, input FormState) (*entity.Link, error) {
	req, err := f.builder.Build(ctx, strings.TrimSpace(input.URL), user.Username, input.QRCodeEnabled, input.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := f.poster.PostURL(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to post request: %w", err)
	}

	link := entity.NewLink(*req, *res)
	if link.CreatedAt.IsZero() {
		link.CreatedAt = f.cfg.now()
	}

	if err := f.store.Append(ctx, user.Username, link); err != nil {
		if errors.Is(err, entity.ErrLinkExists) {
			f.cfg.logger.WarnContext(ctx, "backend accepted a link already in the collection",
				slog.String("username", user.Username),
				slog.String("slug", link.Slug),
			)
		}
		return nil, fmt.Errorf("failed to store link: %w", err)
	}

	return &link, nil
}

// validateState runs the client-side checks in order and returns the first failure.
func (f *SubmissionForm) validateState() *ValidationError {
	rawURL := strings.TrimSpace(f.state.URL)
	if rawURL == "" {
		return &ValidationError{Field: FieldURL, Message: MsgEnterURL}
	}

	if err := f.cfg.validate.Var(rawURL, "url"); err != nil {
		return &ValidationError{Field: FieldURL, Message: MsgEnterValidURL}
	}

	switch err := f.state.Options().Validate(); {
	case errors.Is(err, entity.ErrEmptySlug):
		return &ValidationError{Field: FieldCustomSlug, Message: MsgEnterValidSlug}
	case errors.Is(err, entity.ErrMissingExpiration):
		return &ValidationError{Field: FieldExpiration, Message: MsgSelectExpiration}
	}

	return nil
}

func (f *SubmissionForm) setExpiration(at *time.Time) {
	f.state.Expiration = at
	f.state.ExpirationLabel = formatExpiration(at)
	f.clearOptionErrors()
}

// clearOptionErrors drops errors that went stale after an option changed.
func (f *SubmissionForm) clearOptionErrors() {
	if f.state.CustomSlugEnabled || f.state.ExpirationEnabled {
		f.state.Error = ""
	}
	f.state.SlugError = ""
}

func (f *SubmissionForm) reset() {
	submitting := f.state.Submitting
	f.state = FormState{Submitting: submitting}
}

func (f *SubmissionForm) notify(ctx context.Context, variant entity.Variant, title, description string) {
	f.cfg.notifier.Notify(ctx, entity.Notification{
		Variant:     variant,
		Title:       title,
		Description: description,
	})
}

// formatExpiration renders a date as "October 15th, 2026".
func formatExpiration(at *time.Time) string {
	if at == nil {
		return ""
	}
	return fmt.Sprintf("%s %s, %d", at.Format(expirationDateLayout), humanize.Ordinal(at.Day()), at.Year())
}
