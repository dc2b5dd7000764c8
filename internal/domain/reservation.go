package domain

import (
	"context"
	"fmt"
	"time"
)

type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	SessionID     int
	ReservationID int
}

// TicketSpec is one requested seat claim inside a booking request.
type TicketSpec struct {
	Row       int
	Seat      int
	SessionID int
}

// ReservationSummary is a reservation as listed for its owner, with the
// tickets joined to their session, show, and dome.
type ReservationSummary struct {
	ID        int
	CreatedAt time.Time
	Tickets   []TicketDetail
}

type TicketDetail struct {
	ID        int
	Row       int
	Seat      int
	SessionID int
	ShowTime  time.Time
	ShowTitle string
	DomeName  string
}

// ValidateTicketBounds checks a requested (row, seat) pair against the dome's
// seat grid. Both coordinates are 1-based.
func ValidateTicketBounds(row, seat int, dome *PlanetariumDome) error {
	if row < 1 || row > dome.Rows {
		return &SeatOutOfRangeError{Field: "row", Value: row, Max: dome.Rows}
	}

	if seat < 1 || seat > dome.SeatsPerRow {
		return &SeatOutOfRangeError{Field: "seat", Value: seat, Max: dome.SeatsPerRow}
	}

	return nil
}

// SeatOutOfRangeError reports a row or seat number outside the dome grid.
type SeatOutOfRangeError struct {
	Field string
	Value int
	Max   int
}

func (e *SeatOutOfRangeError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (1, %d), got %d", e.Field, e.Max, e.Value)
}

type ReservationRepository interface {
	// Create persists the reservation and all of its tickets in one
	// transaction. A (session, row, seat) collision with an existing ticket
	// fails the whole transaction with ErrSeatAlreadyTaken.
	Create(ctx context.Context, reservation *Reservation) error
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]ReservationSummary, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userID int) (*ReservationSummary, error)
	DeleteByIdAndUserId(ctx context.Context, id, userID int) error
}
