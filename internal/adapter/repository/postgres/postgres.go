package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

const linksTable = "links"

var linkColumns = []string{
	"username",
	"slug",
	"original_url",
	"custom_slug",
	"wants_qr_code",
	"qr_code",
	"expires_at",
	"clicks",
	"created_at",
}

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

type linkDB struct {
	Username    string     `db:"username"`
	Slug        string     `db:"slug"`
	OriginalURL string     `db:"original_url"`
	CustomSlug  *string    `db:"custom_slug"`
	WantsQRCode bool       `db:"wants_qr_code"`
	QRCode      string     `db:"qr_code"`
	ExpiresAt   *time.Time `db:"expires_at"`
	Clicks      int64      `db:"clicks"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (l *linkDB) toEntity() entity.Link {
	return entity.Link{
		ShortenedURL: entity.ShortenedURL{
			OriginalURL: l.OriginalURL,
			CreatedBy:   l.Username,
			WantsQRCode: l.WantsQRCode,
			CustomSlug:  l.CustomSlug,
			ExpiresAt:   l.ExpiresAt,
		},
		Slug:      l.Slug,
		QRCode:    l.QRCode,
		CreatedAt: l.CreatedAt,
		Clicks:    l.Clicks,
	}
}

func linkValues(username string, link entity.Link) []any {
	return []any{
		username,
		link.Slug,
		link.OriginalURL,
		link.CustomSlug,
		link.WantsQRCode,
		link.QRCode,
		link.ExpiresAt,
		link.Clicks,
		link.CreatedAt,
	}
}

// LinkRepository stores users' link collections in the links table.
// Rows are returned in insertion order.
type LinkRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *LinkRepository) Append(ctx context.Context, username string, link entity.Link) error {
	const op = "adapter.repository.postgres.LinkRepository.Append"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	query, args, err := r.sb.
		Insert(linksTable).
		Columns(linkColumns...).
		Values(linkValues(username, link)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolationError(err) {
			return fmt.Errorf("%s: %w", op, entity.ErrLinkExists)
		}

		return fmt.Errorf("%s: failed to insert into links table: %w", op, err)
	}

	return nil
}

func (r *LinkRepository) List(ctx context.Context, username string) ([]entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.List"

	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	query, args, err := r.sb.
		Select(linkColumns...).
		From(linksTable).
		Where(squirrel.Eq{"username": username}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select from links table: %w", op, err)
	}

	links := make([]entity.Link, 0, len(rows))
	for i := range rows {
		links = append(links, rows[i].toEntity())
	}

	return links, nil
}

// Replace swaps the user's collection in a single transaction.
func (r *LinkRepository) Replace(ctx context.Context, username string, links []entity.Link) error {
	const op = "adapter.repository.postgres.LinkRepository.Replace"

	if username == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	deleteQuery, deleteArgs, err := r.sb.
		Delete(linksTable).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%s: failed to delete from links table: %w", op, err)
	}

	if len(links) > 0 {
		insert := r.sb.Insert(linksTable).Columns(linkColumns...)
		for _, link := range links {
			insert = insert.Values(linkValues(username, link)...)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%s: failed to build insert query: %w", op, err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			if isUniqueViolationError(err) {
				return fmt.Errorf("%s: %w", op, entity.ErrLinkExists)
			}

			return fmt.Errorf("%s: failed to insert into links table: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}
