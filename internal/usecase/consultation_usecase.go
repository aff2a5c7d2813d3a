package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// ConsultationUsecase defines the interface for service bookings.
type ConsultationUsecase interface {
	// Request books a consultation against an active service offering.
	Request(ctx context.Context, userID uint, input *RequestConsultationInput) (*entity.ConsultationRequest, error)

	// ListMine returns the caller's bookings, newest first.
	ListMine(ctx context.Context, userID uint) ([]*entity.ConsultationRequest, error)

	// ListAll returns every booking system-wide. Admin only.
	ListAll(ctx context.Context) ([]*entity.ConsultationRequest, error)

	// UpdateStatus moves a booking through its lifecycle. Admin only.
	UpdateStatus(ctx context.Context, id uint, input *UpdateConsultationStatusInput) error
}

// --- Input DTOs ---

// RequestConsultationInput defines the data required to book a consultation.
type RequestConsultationInput struct {
	ServiceID     uint   `json:"service_id" validate:"required"`
	Name          string `json:"name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"max=32"`
	PreferredDate string `json:"preferred_date" validate:"max=32"`
	Message       string `json:"message"`
}

// UpdateConsultationStatusInput defines the data required to change a
// booking's status.
type UpdateConsultationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
