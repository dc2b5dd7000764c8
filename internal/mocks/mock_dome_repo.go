package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockPlanetariumDomeRepo struct {
	domain.PlanetariumDomeRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.PlanetariumDome, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.PlanetariumDome, error)
	CreateFunc  func(ctx context.Context, dome *domain.PlanetariumDome) error
	UpdateFunc  func(ctx context.Context, dome *domain.PlanetariumDome) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockPlanetariumDomeRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.PlanetariumDome, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockPlanetariumDomeRepo) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPlanetariumDomeRepo) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	return m.CreateFunc(ctx, dome)
}

func (m *MockPlanetariumDomeRepo) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	return m.UpdateFunc(ctx, dome)
}

func (m *MockPlanetariumDomeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
