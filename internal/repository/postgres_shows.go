package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresAstronomyShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAstronomyShowRepository(db *pgxpool.Pool) *PostgresAstronomyShowRepository {
	return &PostgresAstronomyShowRepository{
		db: db,
	}
}

func (p *PostgresAstronomyShowRepository) GetAll(
	ctx context.Context,
	filters domain.ShowFilters) ([]domain.AstronomyShow, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			s.id,
			s.title,
			s.description,
			COALESCE(s.poster_url, ''),
			COALESCE(jsonb_agg(
				jsonb_build_object('id', t.id, 'name', t.name) ORDER BY t.name
			) FILTER (WHERE t.id IS NOT NULL), '[]') AS themes
		FROM astronomy_shows s
		LEFT JOIN show_theme_assignments sta ON sta.show_id = s.id
		LEFT JOIN show_themes t ON t.id = sta.theme_id
		WHERE ($1 = '' OR s.title ILIKE '%' || $1 || '%')
			AND (cardinality($2::int[]) = 0 OR s.id IN (
				SELECT show_id FROM show_theme_assignments WHERE theme_id = ANY($2)
			))
		GROUP BY s.id
		ORDER BY s.title
		LIMIT $3 OFFSET $4
	`

	themeIDs := filters.ThemeIDs
	if themeIDs == nil {
		themeIDs = []int{}
	}

	rows, err := p.db.Query(ctx, query, filters.Title, themeIDs, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	shows := make([]domain.AstronomyShow, 0)
	totalRecords := 0

	for rows.Next() {
		var show domain.AstronomyShow
		var themesJson json.RawMessage

		err = rows.Scan(
			&totalRecords,
			&show.ID,
			&show.Title,
			&show.Description,
			&show.PosterUrl,
			&themesJson,
		)
		if err != nil {
			return nil, nil, err
		}

		if err := json.Unmarshal(themesJson, &show.Themes); err != nil {
			return nil, nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return shows, metadata, nil
}

func (p *PostgresAstronomyShowRepository) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	query := `
		SELECT
			s.id,
			s.title,
			s.description,
			COALESCE(s.poster_url, ''),
			COALESCE(jsonb_agg(
				jsonb_build_object('id', t.id, 'name', t.name) ORDER BY t.name
			) FILTER (WHERE t.id IS NOT NULL), '[]') AS themes
		FROM astronomy_shows s
		LEFT JOIN show_theme_assignments sta ON sta.show_id = s.id
		LEFT JOIN show_themes t ON t.id = sta.theme_id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var show domain.AstronomyShow
	var themesJson json.RawMessage

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.Title,
		&show.Description,
		&show.PosterUrl,
		&themesJson,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err := json.Unmarshal(themesJson, &show.Themes); err != nil {
		return nil, err
	}

	return &show, nil
}

func (p *PostgresAstronomyShowRepository) Create(
	ctx context.Context,
	show *domain.AstronomyShow,
	themeIDs []int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO astronomy_shows (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, show.Title, show.Description).Scan(&show.ID)
		if err != nil {
			return err
		}

		return p.assignThemes(ctx, tx, show.ID, themeIDs)
	})
}

func (p *PostgresAstronomyShowRepository) Update(
	ctx context.Context,
	show *domain.AstronomyShow,
	themeIDs []int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE astronomy_shows SET title = $1, description = $2 WHERE id = $3`

		tag, err := tx.Exec(ctx, query, show.Title, show.Description, show.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM show_theme_assignments WHERE show_id = $1`, show.ID)
		if err != nil {
			return err
		}

		return p.assignThemes(ctx, tx, show.ID, themeIDs)
	})
}

func (p *PostgresAstronomyShowRepository) assignThemes(
	ctx context.Context,
	tx pgx.Tx,
	showID int,
	themeIDs []int) error {

	if len(themeIDs) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(themeIDs))
	for _, themeID := range themeIDs {
		rows = append(rows, []any{showID, themeID})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"show_theme_assignments"},
		[]string{"show_id", "theme_id"},
		pgx.CopyFromRows(rows),
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrRecordNotFound
			case pgerrcode.UniqueViolation:
				return domain.ErrThemeAssignedTwice
			}
		}

		return err
	}

	return nil
}

func (p *PostgresAstronomyShowRepository) UpdatePoster(ctx context.Context, id int, posterUrl string) error {
	query := `UPDATE astronomy_shows SET poster_url = $1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, posterUrl, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresAstronomyShowRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM astronomy_shows WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
