package handler

import (
	"log/slog"
	"net/http"

	"terraverde/internal/delivery/http/response"
	"terraverde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferingHandler holds dependencies for service offering handlers.
type OfferingHandler struct {
	uc     usecase.OfferingUsecase
	logger *slog.Logger
}

// NewOfferingHandler is the constructor for OfferingHandler, injected by Fx.
func NewOfferingHandler(uc usecase.OfferingUsecase, logger *slog.Logger) *OfferingHandler {
	return &OfferingHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public listing of active offerings.
func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offerings, "Services retrieved successfully")
}

// ListAll handles the admin listing including inactive offerings.
func (h *OfferingHandler) ListAll(c echo.Context) error {
	offerings, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offerings, "Services retrieved successfully")
}

// Get handles a single-offering read.
func (h *OfferingHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	offering, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offering, "Service retrieved successfully")
}

// Create handles the admin offering creation request.
func (h *OfferingHandler) Create(c echo.Context) error {
	var input *usecase.CreateOfferingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	offering, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offering, "Service created successfully")
}

// Update handles the admin partial offering update request.
func (h *OfferingHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateOfferingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service updated successfully")
}

// Delete handles the admin offering delete request.
func (h *OfferingHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}
