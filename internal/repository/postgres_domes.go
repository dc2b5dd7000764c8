package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresPlanetariumDomeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlanetariumDomeRepository(db *pgxpool.Pool) *PostgresPlanetariumDomeRepository {
	return &PostgresPlanetariumDomeRepository{
		db: db,
	}
}

func (p *PostgresPlanetariumDomeRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.PlanetariumDome, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, name, seat_rows, seats_per_row
		FROM planetarium_domes
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, pagination.Term, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	domes := make([]domain.PlanetariumDome, 0)
	totalRecords := 0

	for rows.Next() {
		var dome domain.PlanetariumDome

		err = rows.Scan(&totalRecords, &dome.ID, &dome.Name, &dome.Rows, &dome.SeatsPerRow)
		if err != nil {
			return nil, nil, err
		}

		domes = append(domes, dome)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return domes, metadata, nil
}

func (p *PostgresPlanetariumDomeRepository) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	query := `SELECT id, name, seat_rows, seats_per_row FROM planetarium_domes WHERE id = $1`

	var dome domain.PlanetariumDome

	err := p.db.QueryRow(ctx, query, id).Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsPerRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dome, nil
}

func (p *PostgresPlanetariumDomeRepository) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `
		INSERT INTO planetarium_domes (name, seat_rows, seats_per_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, dome.Name, dome.Rows, dome.SeatsPerRow).Scan(&dome.ID)
}

func (p *PostgresPlanetariumDomeRepository) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `
		UPDATE planetarium_domes
		SET name = $1, seat_rows = $2, seats_per_row = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(ctx, query, dome.Name, dome.Rows, dome.SeatsPerRow, dome.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPlanetariumDomeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM planetarium_domes WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
