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

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create inserts the reservation row and every ticket in a single
// transaction. The unique constraint on (session_id, seat_row, seat_number)
// decides races between concurrent bookings of the same seat: the loser's
// insert fails and the whole reservation rolls back.
func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO tickets (seat_row, seat_number, session_id, reservation_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		for i := range reservation.Tickets {
			ticket := &reservation.Tickets[i]
			ticket.ReservationID = reservation.ID

			err = tx.QueryRow(ctx, query, ticket.Row, ticket.Seat, ticket.SessionID, ticket.ReservationID).
				Scan(&ticket.ID)

			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) {
					switch pgErr.Code {
					case pgerrcode.UniqueViolation:
						return domain.ErrSeatAlreadyTaken
					case pgerrcode.ForeignKeyViolation:
						return domain.ErrRecordNotFound
					}
				}

				return err
			}
		}

		return nil
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.ReservationSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.ReservationSummary

		err = rows.Scan(&totalRecords, &reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		tickets, err := p.retrieveTickets(ctx, reservations[i].ID)
		if err != nil {
			return nil, nil, err
		}

		reservations[i].Tickets = tickets
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(
	ctx context.Context,
	id, userID int) (*domain.ReservationSummary, error) {

	query := `
		SELECT id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.ReservationSummary

	err := p.db.QueryRow(ctx, query, id, userID).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	tickets, err := p.retrieveTickets(ctx, id)
	if err != nil {
		return nil, err
	}

	reservation.Tickets = tickets

	return &reservation, nil
}

func (p *PostgresReservationRepository) retrieveTickets(
	ctx context.Context,
	reservationID int) ([]domain.TicketDetail, error) {

	query := `
		SELECT
			t.id,
			t.seat_row,
			t.seat_number,
			t.session_id,
			ss.show_time,
			sh.title,
			d.name
		FROM tickets t
		JOIN show_sessions ss ON t.session_id = ss.id
		JOIN astronomy_shows sh ON ss.show_id = sh.id
		JOIN planetarium_domes d ON ss.dome_id = d.id
		WHERE t.reservation_id = $1
		ORDER BY t.seat_row, t.seat_number
	`

	rows, err := p.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.TicketDetail, 0)

	for rows.Next() {
		var ticket domain.TicketDetail

		err = rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.SessionID,
			&ticket.ShowTime,
			&ticket.ShowTitle,
			&ticket.DomeName,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// DeleteByIdAndUserId removes the reservation; its tickets go with it via
// the ON DELETE CASCADE on tickets.reservation_id.
func (p *PostgresReservationRepository) DeleteByIdAndUserId(ctx context.Context, id, userID int) error {
	query := `DELETE FROM reservations WHERE id = $1 AND user_id = $2`

	tag, err := p.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
