// Package memory keeps users' link collections in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

type LinkRepository struct {
	mu    sync.RWMutex
	links map[string][]entity.Link
}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{
		links: make(map[string][]entity.Link),
	}
}

func (r *LinkRepository) Append(ctx context.Context, username string, link entity.Link) error {
	const op = "adapter.repository.memory.LinkRepository.Append"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.links[username] = append(r.links[username], link)
	return nil
}

// List returns a copy of the user's links in insertion order.
func (r *LinkRepository) List(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "adapter.repository.memory.LinkRepository.List"

	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	links := slices.Clone(r.links[username])
	if links == nil {
		links = []entity.Link{}
	}
	return links, nil
}

func (r *LinkRepository) Replace(ctx context.Context, username string, links []entity.Link) error {
	const op = "adapter.repository.memory.LinkRepository.Replace"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.links[username] = slices.Clone(links)
	return nil
}
