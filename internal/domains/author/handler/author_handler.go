package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/pagination"
	"library-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// parseID treats a malformed id the same as a missing row, matching
// the API's route-binding behavior.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, "Author not found")
		return 0, false
	}
	return id, true
}

// List - GET /v1/authors?page=N
func (h *AuthorHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c)

	resources, total, err := h.service.List(c.Request.Context(), page, pagination.DefaultPerPage)
	if err != nil {
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, pagination.Page[author.AuthorResource]{
		Data: resources,
		Meta: pagination.NewMeta(pagination.BaseURL(c), page, pagination.DefaultPerPage, total),
	})
}

// Get - GET /v1/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resource, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest
	if err := c.BindJSON(&req); err != nil {
		return // gin aborts with 400
	}

	resource, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if fieldErrs := response.FieldErrors(err); fieldErrs != nil {
			response.ValidationFailed(c, fieldErrs)
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.AuthorRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	resource, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, "Author not found")
		default:
			if fieldErrs := response.FieldErrors(err); fieldErrs != nil {
				response.ValidationFailed(c, fieldErrs)
			} else {
				response.InternalServerError(c)
			}
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// Delete - DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, "Author not found")
		case errors.Is(err, author.ErrAuthorHasBooks):
			response.Conflict(c, "Cannot delete an author with books")
		default:
			response.InternalServerError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
