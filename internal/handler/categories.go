package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/apierror"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/dto"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/service"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List GET /api/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /api/categories/:id
func (h *CategoriesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrCategoryNotFound.Error()))
		return
	}
	resp, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.Error(svcErr) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body dto.CreateCategoryRequest true "Category fields"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/categories [post]
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/categories/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrCategoryNotFound.Error()))
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/categories/:id — foods referencing the category are left
// untouched.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrCategoryNotFound.Error()))
		return
	}
	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		if errors.Is(svcErr, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.Error(svcErr) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
