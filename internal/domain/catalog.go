package domain

import "context"

type ShowTheme struct {
	ID   int
	Name string
}

type AstronomyShow struct {
	ID          int
	Title       string
	Description string
	PosterUrl   string
	Themes      []ShowTheme
}

type PlanetariumDome struct {
	ID          int
	Name        string
	Rows        int
	SeatsPerRow int
}

// Capacity is the total number of seats in the dome's grid.
func (d PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsPerRow
}

// ShowFilters narrows the show list by title substring and theme membership.
type ShowFilters struct {
	Title    string
	ThemeIDs []int
	Page     int
	PageSize int
}

func (f ShowFilters) Limit() int {
	return f.PageSize
}

func (f ShowFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ShowThemeRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]ShowTheme, *Metadata, error)
	GetById(ctx context.Context, id int) (*ShowTheme, error)
	Create(ctx context.Context, theme *ShowTheme) error
	Update(ctx context.Context, theme *ShowTheme) error
	Delete(ctx context.Context, id int) error
}

type AstronomyShowRepository interface {
	GetAll(ctx context.Context, filters ShowFilters) ([]AstronomyShow, *Metadata, error)
	GetById(ctx context.Context, id int) (*AstronomyShow, error)
	Create(ctx context.Context, show *AstronomyShow, themeIDs []int) error
	Update(ctx context.Context, show *AstronomyShow, themeIDs []int) error
	UpdatePoster(ctx context.Context, id int, posterUrl string) error
	Delete(ctx context.Context, id int) error
}

type PlanetariumDomeRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]PlanetariumDome, *Metadata, error)
	GetById(ctx context.Context, id int) (*PlanetariumDome, error)
	Create(ctx context.Context, dome *PlanetariumDome) error
	Update(ctx context.Context, dome *PlanetariumDome) error
	Delete(ctx context.Context, id int) error
}
