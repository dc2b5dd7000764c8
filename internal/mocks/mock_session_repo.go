package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockShowSessionRepo struct {
	domain.ShowSessionRepository
	GetAllFunc      func(ctx context.Context, filters domain.SessionFilters) ([]domain.ShowSessionSummary, *domain.Metadata, error)
	GetByIdFunc     func(ctx context.Context, id int) (*domain.ShowSessionDetail, error)
	GetWithDomeFunc func(ctx context.Context, id int) (*domain.ShowSession, *domain.PlanetariumDome, error)
	CreateFunc      func(ctx context.Context, session *domain.ShowSession) error
	UpdateFunc      func(ctx context.Context, session *domain.ShowSession) error
	DeleteFunc      func(ctx context.Context, id int) error
}

func (m *MockShowSessionRepo) GetAll(ctx context.Context, filters domain.SessionFilters) ([]domain.ShowSessionSummary, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowSessionRepo) GetById(ctx context.Context, id int) (*domain.ShowSessionDetail, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowSessionRepo) GetWithDome(ctx context.Context, id int) (*domain.ShowSession, *domain.PlanetariumDome, error) {
	return m.GetWithDomeFunc(ctx, id)
}

func (m *MockShowSessionRepo) Create(ctx context.Context, session *domain.ShowSession) error {
	return m.CreateFunc(ctx, session)
}

func (m *MockShowSessionRepo) Update(ctx context.Context, session *domain.ShowSession) error {
	return m.UpdateFunc(ctx, session)
}

func (m *MockShowSessionRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
