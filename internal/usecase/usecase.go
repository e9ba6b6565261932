package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// FormInput is a filled-in submission form received in one piece.
type FormInput struct {
	URL               string
	CustomSlugEnabled bool
	CustomSlug        string
	QRCodeEnabled     bool
	ExpirationEnabled bool
	Expiration        *time.Time
}

// FormOutcome is the result of driving a submission form once.
type FormOutcome struct {
	State        FormState
	Preview      string
	Link         *entity.Link
	AuthRequired bool
}

// FormUseCase creates submission forms wired to the backend and the shared collection.
type FormUseCase struct {
	builder requestBuilder
	poster  urlPoster
	store   linkStore
	users   userProvider
	opts    []FormOption
}

func NewFormUseCase(
	builder requestBuilder,
	poster urlPoster,
	store linkStore,
	users userProvider,
	opts ...FormOption,
) *FormUseCase {
	return &FormUseCase{
		builder: builder,
		poster:  poster,
		store:   store,
		users:   users,
		opts:    opts,
	}
}

// NewForm returns an empty form. Per-form options are applied after the
// use case defaults.
func (uc *FormUseCase) NewForm(opts ...FormOption) *SubmissionForm {
	all := make([]FormOption, 0, len(uc.opts)+len(opts))
	all = append(all, uc.opts...)
	all = append(all, opts...)

	return NewSubmissionForm(uc.builder, uc.poster, uc.store, uc.users, all...)
}

// Preview returns the short link a form holding slug would show.
func (uc *FormUseCase) Preview(slug string) string {
	form := uc.NewForm()
	form.SetCustomSlug(slug)
	return form.Preview()
}

// SubmitForm fills a fresh form the way a user would, then submits it.
// The outcome is always returned, also together with an error.
func (uc *FormUseCase) SubmitForm(ctx context.Context, in FormInput, notifier Notifier) (*FormOutcome, error) {
	const op = "usecase.FormUseCase.SubmitForm"

	outcome := &FormOutcome{}

	form := uc.NewForm(
		WithNotifier(notifier),
		WithAuthRequired(func(context.Context) {
			outcome.AuthRequired = true
		}),
	)

	form.SetURL(in.URL)
	form.EnableCustomSlug(in.CustomSlugEnabled)
	form.SetCustomSlug(in.CustomSlug)
	form.EnableQRCode(in.QRCodeEnabled)
	form.EnableExpiration(in.ExpirationEnabled)

	if in.ExpirationEnabled && in.Expiration != nil {
		if err := form.SelectExpiration(*in.Expiration); err != nil {
			outcome.State = form.State()
			outcome.Preview = form.Preview()
			return outcome, fmt.Errorf("%s: %w", op, err)
		}
	}

	outcome.Preview = form.Preview()

	link, err := form.Submit(ctx)
	outcome.State = form.State()
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", op, err)
	}

	outcome.Link = link
	return outcome, nil
}
