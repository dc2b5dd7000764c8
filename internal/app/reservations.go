package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

// CreateReservation books every requested ticket atomically. Each ticket is
// validated against its session's dome before the transaction; the unique
// constraint on (session, row, seat) settles races at commit time, so a
// concurrent double booking surfaces here as a conflict.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	domes := make(map[int]*domain.PlanetariumDome)
	requested := make(map[domain.TicketSpec]bool)

	for i, spec := range input.Tickets {
		field := fmt.Sprintf("tickets[%d]", i)

		dome, ok := domes[spec.SessionId]
		if !ok {
			_, dome, err = app.sessionRepo.GetWithDome(r.Context(), spec.SessionId)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrRecordNotFound):
					app.fieldValidationResponse(w, r, field+".sessionId", "references an unknown show session")
				default:
					app.serverErrorResponse(w, r, err)
				}

				return
			}

			domes[spec.SessionId] = dome
		}

		err = domain.ValidateTicketBounds(spec.Row, spec.Seat, dome)
		if err != nil {
			var rangeErr *domain.SeatOutOfRangeError
			if errors.As(err, &rangeErr) {
				app.fieldValidationResponse(w, r, field+"."+rangeErr.Field, rangeErr.Error())
				return
			}

			app.serverErrorResponse(w, r, err)
			return
		}

		tuple := domain.TicketSpec{Row: spec.Row, Seat: spec.Seat, SessionID: spec.SessionId}
		if requested[tuple] {
			app.fieldValidationResponse(w, r, field, "duplicates another ticket in this request")
			return
		}
		requested[tuple] = true
	}

	user := app.contextGetUser(r)

	reservation := domain.Reservation{
		UserID:  user.ID,
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}

	for i, spec := range input.Tickets {
		reservation.Tickets[i] = domain.Ticket{
			Row:       spec.Row,
			Seat:      spec.Seat,
			SessionID: spec.SessionId,
		}
	}

	err = app.reservationRepo.Create(r.Context(), &reservation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			// A session deleted between validation and commit.
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic during sending reservation confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"reservationID": reservation.ID,
			"tickets":       reservation.Tickets,
		}

		err := app.mailer.Send(user.Email, "reservation_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send reservation confirmation email", "error", err)
		}
	}()

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(&reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), user.ID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: toReservationResponses(reservations),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), id, user.ID)
	if err != nil {
		switch {
		// Another user's reservation is reported as missing, not forbidden,
		// to avoid leaking reservation ids.
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationSummaryResponse(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	err = app.reservationRepo.DeleteByIdAndUserId(r.Context(), id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toReservationResponse(reservation *domain.Reservation) api.ReservationResponse {
	tickets := make([]api.TicketResponse, len(reservation.Tickets))

	for i, ticket := range reservation.Tickets {
		tickets[i] = api.TicketResponse{
			Id:        ticket.ID,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
			SessionId: ticket.SessionID,
		}
	}

	return api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}

func toReservationSummaryResponse(reservation *domain.ReservationSummary) api.ReservationResponse {
	tickets := make([]api.TicketResponse, len(reservation.Tickets))

	for i, ticket := range reservation.Tickets {
		tickets[i] = api.TicketResponse{
			Id:        ticket.ID,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
			SessionId: ticket.SessionID,
			ShowTime:  ticket.ShowTime,
			ShowTitle: ticket.ShowTitle,
			DomeName:  ticket.DomeName,
		}
	}

	return api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}

func toReservationResponses(reservations []domain.ReservationSummary) []api.ReservationResponse {
	responses := make([]api.ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = toReservationSummaryResponse(&reservations[i])
	}

	return responses
}
