package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) ListShowSessions(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	page, err := readInt(qs, "page", DefaultPage)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pageSize, err := readInt(qs, "pageSize", DefaultPageSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		app.badRequestResponse(w, r, errors.New("page must be at least 1 and pageSize between 1 and 100"))
		return
	}

	date, err := readDate(qs, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showID, err := readInt(qs, "show", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.SessionFilters{
		Date:     date,
		ShowID:   showID,
		Page:     page,
		PageSize: pageSize,
	}

	sessions, metadata, err := app.sessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowSessionListResponse{
		Sessions: toShowSessionSummaries(sessions),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowSessionDetail(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowSession(w http.ResponseWriter, r *http.Request) {
	var input api.ShowSessionRequest

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

	session := domain.ShowSession{
		ShowID:   input.ShowId,
		DomeID:   input.DomeId,
		ShowTime: input.ShowTime,
	}

	// Sessions sharing a dome and overlapping show times are accepted;
	// scheduling conflicts are left to the staff creating them.
	err = app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldValidationResponse(w, r, "showId", "references an unknown show or dome")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowSessionResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ShowSessionRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	session := domain.ShowSession{
		ID:       id,
		ShowID:   input.ShowId,
		DomeID:   input.DomeId,
		ShowTime: input.ShowTime,
	}

	err = app.sessionRepo.Update(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowSessionResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.sessionRepo.Delete(r.Context(), id)
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

func toShowSessionSummaries(sessions []domain.ShowSessionSummary) []api.ShowSessionSummary {
	summaries := make([]api.ShowSessionSummary, len(sessions))

	for i, session := range sessions {
		summaries[i] = api.ShowSessionSummary{
			Id:               session.ID,
			ShowTime:         session.ShowTime,
			ShowTitle:        session.ShowTitle,
			ShowPosterUrl:    session.ShowPosterUrl,
			DomeName:         session.DomeName,
			DomeCapacity:     session.DomeCapacity,
			TicketsAvailable: session.TicketsAvailable,
		}
	}

	return summaries
}

func toShowSessionResponse(session domain.ShowSession) api.ShowSessionResponse {
	return api.ShowSessionResponse{
		Id:       session.ID,
		ShowId:   session.ShowID,
		DomeId:   session.DomeID,
		ShowTime: session.ShowTime,
	}
}

func toShowSessionDetail(detail *domain.ShowSessionDetail) api.ShowSessionDetailResponse {
	themeNames := make([]string, len(detail.Show.Themes))
	for i, theme := range detail.Show.Themes {
		themeNames[i] = theme.Name
	}

	takenPlaces := make([]api.SeatPlace, len(detail.TakenPlaces))
	for i, place := range detail.TakenPlaces {
		takenPlaces[i] = api.SeatPlace{Row: place.Row, Seat: place.Seat}
	}

	return api.ShowSessionDetailResponse{
		Id:       detail.ID,
		ShowTime: detail.ShowTime,
		Show: api.AstronomyShowSummary{
			Id:         detail.Show.ID,
			Title:      detail.Show.Title,
			PosterUrl:  detail.Show.PosterUrl,
			ThemeNames: themeNames,
		},
		Dome:        toPlanetariumDomeResponse(detail.Dome),
		TakenPlaces: takenPlaces,
	}
}
