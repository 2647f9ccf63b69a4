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

type FoodsHandler struct{ svc service.FoodService }

func NewFoodsHandler(svc service.FoodService) *FoodsHandler {
	return &FoodsHandler{svc: svc}
}

// List godoc
// @Summary List all food items with populated category references
// @Tags foods
// @Produce json
// @Success 200 {array} dto.FoodResponse
// @Router /api/foods [get]
func (h *FoodsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /api/foods/:id
func (h *FoodsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrFoodNotFound.Error()))
		return
	}
	resp, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.Error(svcErr) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a food item
// @Tags foods
// @Accept json
// @Produce json
// @Param body body dto.CreateFoodRequest true "Food fields"
// @Success 201 {object} dto.FoodResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/foods [post]
func (h *FoodsHandler) Create(c *gin.Context) {
	var req dto.CreateFoodRequest
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

// Update PUT /api/foods/:id — partial merge, absent fields stay unchanged.
func (h *FoodsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrFoodNotFound.Error()))
		return
	}
	var req dto.UpdateFoodRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/foods/:id
func (h *FoodsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrFoodNotFound.Error()))
		return
	}
	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		if errors.Is(svcErr, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.Error(svcErr) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
