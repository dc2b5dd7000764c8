package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

const maxPosterBytes = 5 << 20

func (app *Application) ListAstronomyShows(w http.ResponseWriter, r *http.Request) {
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

	themeIDs, err := readCSVInts(qs, "themes")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.ShowFilters{
		Title:    readString(qs, "title", ""),
		ThemeIDs: themeIDs,
		Page:     page,
		PageSize: pageSize,
	}

	shows, metadata, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AstronomyShowListResponse{
		Shows:    toAstronomyShowSummaries(shows),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAstronomyShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toAstronomyShowDetail(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateAstronomyShow(w http.ResponseWriter, r *http.Request) {
	var input api.AstronomyShowRequest

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

	show := domain.AstronomyShow{
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.showRepo.Create(r.Context(), &show, input.ThemeIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldValidationResponse(w, r, "themeIds", "references an unknown show theme")
		case errors.Is(err, domain.ErrThemeAssignedTwice):
			app.fieldValidationResponse(w, r, "themeIds", "assigns the same theme more than once")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.showRepo.GetById(r.Context(), show.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toAstronomyShowDetail(created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateAstronomyShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.AstronomyShowRequest

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

	show := domain.AstronomyShow{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.showRepo.Update(r.Context(), &show, input.ThemeIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrThemeAssignedTwice):
			app.fieldValidationResponse(w, r, "themeIds", "assigns the same theme more than once")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	updated, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toAstronomyShowDetail(updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteAstronomyShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.showRepo.Delete(r.Context(), id)
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

// UploadAstronomyShowPoster stores a multipart "poster" file under the
// uploads directory with a uuid-suffixed name and records its path.
func (app *Application) UploadAstronomyShowPoster(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = r.ParseMultipartForm(maxPosterBytes)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("poster")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("poster file is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		app.fieldValidationResponse(w, r, "poster", "must be a jpg, jpeg, png or webp file")
		return
	}

	filename := fmt.Sprintf("%s-%s%s", slugify(show.Title), uuid.New(), ext)
	posterPath := filepath.Join(app.config.UploadsDir, "astronomy_show", filename)

	err = savePosterFile(file, posterPath)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.showRepo.UpdatePoster(r.Context(), id, posterPath)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PosterUploadResponse{
		Id:        id,
		PosterUrl: posterPath,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func savePosterFile(src io.Reader, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)

	return err
}

func slugify(s string) string {
	var b strings.Builder

	for _, ch := range strings.ToLower(s) {
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '-' || ch == '_':
			b.WriteByte('-')
		}
	}

	return strings.Trim(b.String(), "-")
}

func toAstronomyShowSummaries(shows []domain.AstronomyShow) []api.AstronomyShowSummary {
	summaries := make([]api.AstronomyShowSummary, len(shows))

	for i, show := range shows {
		themeNames := make([]string, len(show.Themes))
		for j, theme := range show.Themes {
			themeNames[j] = theme.Name
		}

		summaries[i] = api.AstronomyShowSummary{
			Id:         show.ID,
			Title:      show.Title,
			PosterUrl:  show.PosterUrl,
			ThemeNames: themeNames,
		}
	}

	return summaries
}

func toAstronomyShowDetail(show *domain.AstronomyShow) api.AstronomyShowDetailResponse {
	return api.AstronomyShowDetailResponse{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		PosterUrl:   show.PosterUrl,
		Themes:      toShowThemeResponses(show.Themes),
	}
}
