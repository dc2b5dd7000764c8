package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (app *Application) ListShowThemes(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	themes, metadata, err := app.themeRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowThemeListResponse{
		Themes:   toShowThemeResponses(themes),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theme, err := app.themeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowThemeResponse(*theme), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowTheme(w http.ResponseWriter, r *http.Request) {
	var input api.ShowThemeRequest

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

	theme := domain.ShowTheme{Name: input.Name}

	err = app.themeRepo.Create(r.Context(), &theme)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrThemeAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowThemeResponse(theme), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ShowThemeRequest

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

	theme := domain.ShowTheme{ID: id, Name: input.Name}

	err = app.themeRepo.Update(r.Context(), &theme)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrThemeAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowThemeResponse(theme), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowTheme(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.themeRepo.Delete(r.Context(), id)
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

func (app *Application) readPagination(r *http.Request) (domain.Pagination, error) {
	qs := r.URL.Query()

	page, err := readInt(qs, "page", DefaultPage)
	if err != nil {
		return domain.Pagination{}, err
	}

	pageSize, err := readInt(qs, "pageSize", DefaultPageSize)
	if err != nil {
		return domain.Pagination{}, err
	}

	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return domain.Pagination{}, errors.New("page must be at least 1 and pageSize between 1 and 100")
	}

	return domain.Pagination{
		Page:     page,
		PageSize: pageSize,
		Term:     readString(qs, "name", ""),
	}, nil
}

func toShowThemeResponse(theme domain.ShowTheme) api.ShowThemeResponse {
	return api.ShowThemeResponse{
		Id:   theme.ID,
		Name: theme.Name,
	}
}

func toShowThemeResponses(themes []domain.ShowTheme) []api.ShowThemeResponse {
	responses := make([]api.ShowThemeResponse, len(themes))
	for i, theme := range themes {
		responses[i] = toShowThemeResponse(theme)
	}

	return responses
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
