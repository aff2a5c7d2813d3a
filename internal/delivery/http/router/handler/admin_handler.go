package handler

import (
	"log/slog"
	"net/http"

	"terraverde/internal/delivery/http/response"
	"terraverde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for back-office handlers that are not
// tied to a single content family: user management, uploads, seeding.
type AdminHandler struct {
	userAdmin usecase.UserAdminUsecase
	media     usecase.MediaUsecase
	seed      usecase.SeedUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	userAdmin usecase.UserAdminUsecase,
	media usecase.MediaUsecase,
	seed usecase.SeedUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		userAdmin: userAdmin,
		media:     media,
		seed:      seed,
		logger:    logger,
	}
}

// ListUsers handles the back-office user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userAdmin.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UpdateUserAccess handles role and access level changes.
func (h *AdminHandler) UpdateUserAccess(c echo.Context) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateUserAccessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.userAdmin.UpdateAccess(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User access updated successfully")
}

// UploadImage handles base64 image uploads to object storage.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	var input *usecase.UploadImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	url, err := h.media.UploadImage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}

// Seed handles the demo-data seeding request.
func (h *AdminHandler) Seed(c echo.Context) error {
	report, err := h.seed.SeedAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Seed completed successfully")
}
