package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockAstronomyShowRepo struct {
	domain.AstronomyShowRepository
	GetAllFunc       func(ctx context.Context, filters domain.ShowFilters) ([]domain.AstronomyShow, *domain.Metadata, error)
	GetByIdFunc      func(ctx context.Context, id int) (*domain.AstronomyShow, error)
	CreateFunc       func(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error
	UpdateFunc       func(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error
	UpdatePosterFunc func(ctx context.Context, id int, posterUrl string) error
	DeleteFunc       func(ctx context.Context, id int) error
}

func (m *MockAstronomyShowRepo) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.AstronomyShow, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockAstronomyShowRepo) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockAstronomyShowRepo) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error {
	return m.CreateFunc(ctx, show, themeIDs)
}

func (m *MockAstronomyShowRepo) Update(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error {
	return m.UpdateFunc(ctx, show, themeIDs)
}

func (m *MockAstronomyShowRepo) UpdatePoster(ctx context.Context, id int, posterUrl string) error {
	return m.UpdatePosterFunc(ctx, id, posterUrl)
}

func (m *MockAstronomyShowRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
