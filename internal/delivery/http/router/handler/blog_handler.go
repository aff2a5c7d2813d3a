package handler

import (
	"log/slog"
	"net/http"

	"terraverde/internal/delivery/http/response"
	"terraverde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for knowledge-center handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public listing of published posts.
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Blog posts retrieved successfully")
}

// ListAll handles the admin listing including drafts.
func (h *BlogHandler) ListAll(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Blog posts retrieved successfully")
}

// Get handles a public single-post read.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post retrieved successfully")
}

// GetAny handles an admin single-post read, drafts included.
func (h *BlogHandler) GetAny(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post retrieved successfully")
}

// Create handles the admin post creation request.
func (h *BlogHandler) Create(c echo.Context) error {
	var input *usecase.CreateBlogPostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Blog post created successfully")
}

// Update handles the admin partial post update request.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateBlogPostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post updated successfully")
}

// Delete handles the admin post delete request.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post deleted successfully")
}
