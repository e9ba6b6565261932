package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// linkStore is the shared collection of links per user.
type linkStore interface {
	Append(ctx context.Context, username string, link entity.Link) error
	List(ctx context.Context, username string) ([]entity.Link, error)
	Replace(ctx context.Context, username string, links []entity.Link) error
}

type linkFetcher interface {
	ListLinks(ctx context.Context, username string) ([]entity.Link, error)
}

// LinkUseCase reads the user's collection and reloads it from the backend.
type LinkUseCase struct {
	store   linkStore
	fetcher linkFetcher
}

func NewLinkUseCase(store linkStore, fetcher linkFetcher) *LinkUseCase {
	return &LinkUseCase{
		store:   store,
		fetcher: fetcher,
	}
}

func (uc *LinkUseCase) List(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "usecase.LinkUseCase.List"

	links, err := uc.store.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	return links, nil
}

// Sync replaces the stored collection with the one the backend reports,
// which carries the current click counts.
func (uc *LinkUseCase) Sync(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "usecase.LinkUseCase.Sync"

	links, err := uc.fetcher.ListLinks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to fetch links: %w", op, err)
	}

	if err := uc.store.Replace(ctx, username, links); err != nil {
		return nil, fmt.Errorf("%s: failed to replace links: %w", op, err)
	}

	return links, nil
}
