package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/pagination"
	"library-catalog/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, "Book not found")
		return 0, false
	}
	return id, true
}

// List - GET /v1/books?page=N (authors eagerly embedded)
func (h *BookHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c)

	resources, total, err := h.service.List(c.Request.Context(), page, pagination.DefaultPerPage)
	if err != nil {
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, pagination.Page[book.BookResource]{
		Data: resources,
		Meta: pagination.NewMeta(pagination.BaseURL(c), page, pagination.DefaultPerPage, total),
	})
}

// Get - GET /v1/books/:id (author eagerly embedded)
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resource, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		return
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

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	resource, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			response.NotFound(c, "Book not found")
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

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
