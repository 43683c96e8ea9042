package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayrate/stayrate/internal/api/dto"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/logger"
	"github.com/stayrate/stayrate/internal/service"
	"github.com/stayrate/stayrate/internal/types"
)

type PropertyHandler struct {
	service service.PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{service: service, log: log}
}

// @Summary Create a new property
// @Description Create a new property with its room inventory
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property configuration"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a property by ID
// @Description Get a property by ID
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List properties
// @Description List properties with optional filtering
// @Tags Properties
// @Accept json
// @Produce json
// @Param filter query types.PropertyFilter false "Filter"
// @Success 200 {object} dto.ListPropertiesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var filter types.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListProperties(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a property
// @Description Update a property's details and inventory
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param property body dto.UpdatePropertyRequest true "Property update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a property
// @Description Delete a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
