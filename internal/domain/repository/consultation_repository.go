package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrConsultationNotFound is returned when a consultation request is not found.
var ErrConsultationNotFound = errors.New("consultation request not found")

// ConsultationRepository defines the operations for consultation bookings.
type ConsultationRepository interface {
	Create(ctx context.Context, request *entity.ConsultationRequest) error
	FindByID(ctx context.Context, id uint) (*entity.ConsultationRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.ConsultationRequest, error)
	ListAll(ctx context.Context) ([]*entity.ConsultationRequest, error)

	// UpdateStatus sets the booking status. Returns ErrConsultationNotFound
	// when no row was affected.
	UpdateStatus(ctx context.Context, id uint, status entity.ConsultationStatus) error
}
