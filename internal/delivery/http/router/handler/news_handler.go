package handler

import (
	"log/slog"
	"net/http"

	"terraverde/internal/delivery/http/response"
	"terraverde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler holds dependencies for news handlers.
type NewsHandler struct {
	uc     usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public listing of published news.
func (h *NewsHandler) List(c echo.Context) error {
	entries, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "News retrieved successfully")
}

// ListAll handles the admin listing including unpublished news.
func (h *NewsHandler) ListAll(c echo.Context) error {
	entries, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "News retrieved successfully")
}

// Get handles a public single-entry read.
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	news, err := h.uc.Get(c.Request().Context(), id, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, news, "News retrieved successfully")
}

// Create handles the admin news creation request.
func (h *NewsHandler) Create(c echo.Context) error {
	var input *usecase.CreateNewsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	news, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, news, "News created successfully")
}

// Update handles the admin partial news update request.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateNewsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "News updated successfully")
}

// Delete handles the admin news delete request.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "News deleted successfully")
}
