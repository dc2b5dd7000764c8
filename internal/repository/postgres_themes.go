package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresShowThemeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowThemeRepository(db *pgxpool.Pool) *PostgresShowThemeRepository {
	return &PostgresShowThemeRepository{
		db: db,
	}
}

func (p *PostgresShowThemeRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.ShowTheme, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, name
		FROM show_themes
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, pagination.Term, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	themes := make([]domain.ShowTheme, 0)
	totalRecords := 0

	for rows.Next() {
		var theme domain.ShowTheme

		err = rows.Scan(&totalRecords, &theme.ID, &theme.Name)
		if err != nil {
			return nil, nil, err
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return themes, metadata, nil
}

func (p *PostgresShowThemeRepository) GetById(ctx context.Context, id int) (*domain.ShowTheme, error) {
	query := `SELECT id, name FROM show_themes WHERE id = $1`

	var theme domain.ShowTheme

	err := p.db.QueryRow(ctx, query, id).Scan(&theme.ID, &theme.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theme, nil
}

func (p *PostgresShowThemeRepository) Create(ctx context.Context, theme *domain.ShowTheme) error {
	query := `INSERT INTO show_themes (name) VALUES ($1) RETURNING id`

	err := p.db.QueryRow(ctx, query, theme.Name).Scan(&theme.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrThemeAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresShowThemeRepository) Update(ctx context.Context, theme *domain.ShowTheme) error {
	query := `UPDATE show_themes SET name = $1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, theme.Name, theme.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrThemeAlreadyExists
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowThemeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM show_themes WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
