package usecase

import "context"

// MediaUsecase defines the interface for image uploads backing catalog and
// content imagery.
type MediaUsecase interface {
	// UploadImage stores a base64 payload in object storage and returns the
	// public URL to persist on the owning row.
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}

// --- Input DTOs ---

// UploadImageInput defines the data required to upload an image.
type UploadImageInput struct {
	Payload     string `json:"payload" validate:"required"`
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=100"`
}
