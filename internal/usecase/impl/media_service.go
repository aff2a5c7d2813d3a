package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/service"
	"terraverde/internal/usecase"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage service.ObjectStorage
	logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	storage service.ObjectStorage,
	logger *slog.Logger,
) usecase.MediaUsecase {
	return &mediaService{
		storage: storage,
		logger:  logger,
	}
}

// UploadImage stores the payload and returns its public URL.
func (srv *mediaService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", domainerrors.NewValidationError("content_type must be an image type")
	}

	url, err := srv.storage.UploadBase64(ctx, input.Payload, input.Filename, input.ContentType)
	if err != nil {
		srv.logger.Error("image upload failed", "filename", input.Filename, "error", err)

		return "", domainerrors.ErrInternal.WrapMessage("failed to upload image")
	}

	srv.logger.Info("image uploaded", "filename", input.Filename, "url", url)

	return url, nil
}
