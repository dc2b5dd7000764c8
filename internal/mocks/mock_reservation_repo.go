package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockReservationRepo struct {
	domain.ReservationRepository
	CreateFunc              func(ctx context.Context, reservation *domain.Reservation) error
	GetAllByUserIdFunc      func(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error)
	GetByIdAndUserIdFunc    func(ctx context.Context, id, userID int) (*domain.ReservationSummary, error)
	DeleteByIdAndUserIdFunc func(ctx context.Context, id, userID int) error
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	return m.CreateFunc(ctx, reservation)
}

func (m *MockReservationRepo) GetAllByUserId(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {
	return m.GetAllByUserIdFunc(ctx, userID, pagination)
}

func (m *MockReservationRepo) GetByIdAndUserId(ctx context.Context, id, userID int) (*domain.ReservationSummary, error) {
	return m.GetByIdAndUserIdFunc(ctx, id, userID)
}

func (m *MockReservationRepo) DeleteByIdAndUserId(ctx context.Context, id, userID int) error {
	return m.DeleteByIdAndUserIdFunc(ctx, id, userID)
}
