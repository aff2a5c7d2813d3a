package handler

import (
	"log/slog"
	"net/http"

	"terraverde/internal/delivery/http/middleware"
	"terraverde/internal/delivery/http/response"
	"terraverde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConsultationHandler holds dependencies for consultation booking handlers.
type ConsultationHandler struct {
	uc     usecase.ConsultationUsecase
	logger *slog.Logger
}

// NewConsultationHandler is the constructor for ConsultationHandler, injected by Fx.
func NewConsultationHandler(uc usecase.ConsultationUsecase, logger *slog.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Request handles the booking request.
func (h *ConsultationHandler) Request(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.RequestConsultationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consultation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.Request(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Consultation requested successfully")
}

// ListMine handles the caller's booking history request.
func (h *ConsultationHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Consultations retrieved successfully")
}

// ListAll handles the admin request for every booking.
func (h *ConsultationHandler) ListAll(c echo.Context) error {
	requests, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Consultations retrieved successfully")
}

// UpdateStatus handles the admin booking status transition request.
func (h *ConsultationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateConsultationStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Consultation status updated successfully")
}
