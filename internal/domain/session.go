package domain

import (
	"context"
	"time"
)

type ShowSession struct {
	ID       int
	ShowID   int
	DomeID   int
	ShowTime time.Time
}

// ShowSessionSummary is a session row as listed, joined with its show and
// dome. TicketsAvailable is the dome capacity minus the tickets already sold.
type ShowSessionSummary struct {
	ID               int
	ShowTime         time.Time
	ShowTitle        string
	ShowPosterUrl    string
	DomeName         string
	DomeCapacity     int
	TicketsAvailable int
}

type ShowSessionDetail struct {
	ID          int
	ShowTime    time.Time
	Show        AstronomyShow
	Dome        PlanetariumDome
	TakenPlaces []SeatPlace
}

// SeatPlace identifies one occupied (row, seat) pair within a session.
type SeatPlace struct {
	Row  int
	Seat int
}

// SessionFilters narrows the session list by calendar date and show.
type SessionFilters struct {
	Date     *time.Time
	ShowID   int
	Page     int
	PageSize int
}

func (f SessionFilters) Limit() int {
	return f.PageSize
}

func (f SessionFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ShowSessionRepository interface {
	GetAll(ctx context.Context, filters SessionFilters) ([]ShowSessionSummary, *Metadata, error)
	GetById(ctx context.Context, id int) (*ShowSessionDetail, error)
	// GetWithDome returns the bare session together with its dome geometry,
	// which the booking path needs for bounds validation.
	GetWithDome(ctx context.Context, id int) (*ShowSession, *PlanetariumDome, error)
	Create(ctx context.Context, session *ShowSession) error
	Update(ctx context.Context, session *ShowSession) error
	Delete(ctx context.Context, id int) error
}
