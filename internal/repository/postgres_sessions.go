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

type PostgresShowSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowSessionRepository(db *pgxpool.Pool) *PostgresShowSessionRepository {
	return &PostgresShowSessionRepository{
		db: db,
	}
}

func (p *PostgresShowSessionRepository) GetAll(
	ctx context.Context,
	filters domain.SessionFilters) ([]domain.ShowSessionSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			ss.id,
			ss.show_time,
			sh.title,
			COALESCE(sh.poster_url, ''),
			d.name,
			d.seat_rows * d.seats_per_row AS capacity,
			d.seat_rows * d.seats_per_row
				- (SELECT COUNT(*) FROM tickets t WHERE t.session_id = ss.id) AS tickets_available
		FROM show_sessions ss
		JOIN astronomy_shows sh ON ss.show_id = sh.id
		JOIN planetarium_domes d ON ss.dome_id = d.id
		WHERE ($1::date IS NULL OR ss.show_time::date = $1)
			AND ($2 = 0 OR ss.show_id = $2)
		ORDER BY ss.show_time
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.ShowID, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	sessions := make([]domain.ShowSessionSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var session domain.ShowSessionSummary

		err = rows.Scan(
			&totalRecords,
			&session.ID,
			&session.ShowTime,
			&session.ShowTitle,
			&session.ShowPosterUrl,
			&session.DomeName,
			&session.DomeCapacity,
			&session.TicketsAvailable,
		)
		if err != nil {
			return nil, nil, err
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return sessions, metadata, nil
}

func (p *PostgresShowSessionRepository) GetById(ctx context.Context, id int) (*domain.ShowSessionDetail, error) {
	query := `
		SELECT
			ss.id,
			ss.show_time,
			sh.id,
			sh.title,
			sh.description,
			COALESCE(sh.poster_url, ''),
			d.id,
			d.name,
			d.seat_rows,
			d.seats_per_row
		FROM show_sessions ss
		JOIN astronomy_shows sh ON ss.show_id = sh.id
		JOIN planetarium_domes d ON ss.dome_id = d.id
		WHERE ss.id = $1
	`

	var detail domain.ShowSessionDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Show.ID,
		&detail.Show.Title,
		&detail.Show.Description,
		&detail.Show.PosterUrl,
		&detail.Dome.ID,
		&detail.Dome.Name,
		&detail.Dome.Rows,
		&detail.Dome.SeatsPerRow,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	takenPlaces, err := p.retrieveTakenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}

	detail.TakenPlaces = takenPlaces

	return &detail, nil
}

func (p *PostgresShowSessionRepository) retrieveTakenPlaces(ctx context.Context, sessionID int) ([]domain.SeatPlace, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := make([]domain.SeatPlace, 0)

	for rows.Next() {
		var place domain.SeatPlace

		err = rows.Scan(&place.Row, &place.Seat)
		if err != nil {
			return nil, err
		}

		places = append(places, place)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return places, nil
}

func (p *PostgresShowSessionRepository) GetWithDome(
	ctx context.Context,
	id int) (*domain.ShowSession, *domain.PlanetariumDome, error) {

	query := `
		SELECT
			ss.id,
			ss.show_id,
			ss.dome_id,
			ss.show_time,
			d.id,
			d.name,
			d.seat_rows,
			d.seats_per_row
		FROM show_sessions ss
		JOIN planetarium_domes d ON ss.dome_id = d.id
		WHERE ss.id = $1
	`

	var session domain.ShowSession
	var dome domain.PlanetariumDome

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.ShowID,
		&session.DomeID,
		&session.ShowTime,
		&dome.ID,
		&dome.Name,
		&dome.Rows,
		&dome.SeatsPerRow,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrRecordNotFound
		}

		return nil, nil, err
	}

	return &session, &dome, nil
}

func (p *PostgresShowSessionRepository) Create(ctx context.Context, session *domain.ShowSession) error {
	query := `
		INSERT INTO show_sessions (show_id, dome_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, session.ShowID, session.DomeID, session.ShowTime).Scan(&session.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowSessionRepository) Update(ctx context.Context, session *domain.ShowSession) error {
	query := `
		UPDATE show_sessions
		SET show_id = $1, dome_id = $2, show_time = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(ctx, query, session.ShowID, session.DomeID, session.ShowTime, session.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowSessionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM show_sessions WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
