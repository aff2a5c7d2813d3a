package entity

import "time"

// ConsultationStatus is the lifecycle state of a consultation request.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// IsValid checks if the ConsultationStatus is a valid value.
func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusConfirmed,
		ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	default:
		return false
	}
}

// ConsultationRequest is a booking of a ServiceOffering by a user.
// Status changes are admin-only.
type ConsultationRequest struct {
	ID            uint
	UserID        uint
	ServiceID     uint
	Name          string
	Email         string
	Phone         string
	PreferredDate string
	Message       string
	Status        ConsultationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
