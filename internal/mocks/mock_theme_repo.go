package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockShowThemeRepo struct {
	domain.ShowThemeRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.ShowTheme, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.ShowTheme, error)
	CreateFunc  func(ctx context.Context, theme *domain.ShowTheme) error
	UpdateFunc  func(ctx context.Context, theme *domain.ShowTheme) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockShowThemeRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.ShowTheme, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockShowThemeRepo) GetById(ctx context.Context, id int) (*domain.ShowTheme, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowThemeRepo) Create(ctx context.Context, theme *domain.ShowTheme) error {
	return m.CreateFunc(ctx, theme)
}

func (m *MockShowThemeRepo) Update(ctx context.Context, theme *domain.ShowTheme) error {
	return m.UpdateFunc(ctx, theme)
}

func (m *MockShowThemeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
