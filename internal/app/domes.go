package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) ListPlanetariumDomes(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	domes, metadata, err := app.domeRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlanetariumDomeListResponse{
		Domes:    toPlanetariumDomeResponses(domes),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlanetariumDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dome, err := app.domeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlanetariumDomeResponse(*dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlanetariumDome(w http.ResponseWriter, r *http.Request) {
	var input api.PlanetariumDomeRequest

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

	dome := domain.PlanetariumDome{
		Name:        input.Name,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}

	err = app.domeRepo.Create(r.Context(), &dome)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPlanetariumDomeResponse(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePlanetariumDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.PlanetariumDomeRequest

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

	dome := domain.PlanetariumDome{
		ID:          id,
		Name:        input.Name,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}

	err = app.domeRepo.Update(r.Context(), &dome)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlanetariumDomeResponse(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePlanetariumDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.domeRepo.Delete(r.Context(), id)
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

func toPlanetariumDomeResponse(dome domain.PlanetariumDome) api.PlanetariumDomeResponse {
	return api.PlanetariumDomeResponse{
		Id:          dome.ID,
		Name:        dome.Name,
		Rows:        dome.Rows,
		SeatsPerRow: dome.SeatsPerRow,
		Capacity:    dome.Capacity(),
	}
}

func toPlanetariumDomeResponses(domes []domain.PlanetariumDome) []api.PlanetariumDomeResponse {
	responses := make([]api.PlanetariumDomeResponse, len(domes))
	for i, dome := range domes {
		responses[i] = toPlanetariumDomeResponse(dome)
	}

	return responses
}
