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

type RatePlanHandler struct {
	service     service.RatePlanService
	rateService service.RateService
	log         *logger.Logger
}

func NewRatePlanHandler(service service.RatePlanService, rateService service.RateService, log *logger.Logger) *RatePlanHandler {
	return &RatePlanHandler{service: service, rateService: rateService, log: log}
}

// @Summary Create a new rate plan
// @Description Create a new rate plan with the specified rules and bounds
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param plan body dto.CreateRatePlanRequest true "Rate plan configuration"
// @Success 201 {object} dto.RatePlanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /plans [post]
func (h *RatePlanHandler) CreateRatePlan(c *gin.Context) {
	var req dto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRatePlan(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a rate plan by ID
// @Description Get a rate plan by ID
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Success 200 {object} dto.RatePlanResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plans/{id} [get]
func (h *RatePlanHandler) GetRatePlan(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Rate plan ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetRatePlan(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List rate plans
// @Description List rate plans with optional filtering
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param filter query types.RatePlanFilter false "Filter"
// @Success 200 {object} dto.ListRatePlansResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /plans [get]
func (h *RatePlanHandler) ListRatePlans(c *gin.Context) {
	var filter types.RatePlanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListRatePlans(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a rate plan
// @Description Update a rate plan's fields and status
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param plan body dto.UpdateRatePlanRequest true "Rate plan update"
// @Success 200 {object} dto.RatePlanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /plans/{id} [put]
func (h *RatePlanHandler) UpdateRatePlan(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRatePlan(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Archive a rate plan
// @Description Archive a rate plan so it no longer resolves rates
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plans/{id} [delete]
func (h *RatePlanHandler) DeleteRatePlan(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteRatePlan(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add a pricing rule
// @Description Add a pricing rule to a rate plan
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param rule body dto.CreatePricingRuleRequest true "Pricing rule"
// @Success 201 {object} dto.RatePlanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /plans/{id}/rules [post]
func (h *RatePlanHandler) AddPricingRule(c *gin.Context) {
	id := c.Param("id")
	var req dto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AddPricingRule(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Remove a pricing rule
// @Description Remove a pricing rule from a rate plan
// @Tags RatePlans
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param ruleID path string true "Pricing rule ID"
// @Success 200 {object} dto.RatePlanResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plans/{id}/rules/{ruleID} [delete]
func (h *RatePlanHandler) RemovePricingRule(c *gin.Context) {
	id := c.Param("id")
	ruleID := c.Param("ruleID")

	resp, err := h.service.RemovePricingRule(c.Request.Context(), id, ruleID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Resolve a nightly rate
// @Description Resolve the nightly rate of a plan for a single date
// @Tags Rates
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param request body dto.ResolveRateRequest true "Resolution context"
// @Success 200 {object} dto.RateCalendarEntryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /plans/{id}/resolve [post]
func (h *RatePlanHandler) ResolveRate(c *gin.Context) {
	id := c.Param("id")
	var req dto.ResolveRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.rateService.ResolvePlanRate(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Resolve a rate calendar
// @Description Resolve nightly rates for every date in a range
// @Tags Rates
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param request body dto.RateCalendarRequest true "Calendar range and context"
// @Success 200 {object} dto.RateCalendarResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /plans/{id}/calendar [post]
func (h *RatePlanHandler) GetRateCalendar(c *gin.Context) {
	id := c.Param("id")
	var req dto.RateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.rateService.GetRateCalendar(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote a stay
// @Description Quote a stay for a plan and date range
// @Tags Rates
// @Accept json
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param request body dto.QuoteStayRequest true "Stay parameters"
// @Success 200 {object} dto.QuoteStayResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /plans/{id}/quote [post]
func (h *RatePlanHandler) QuoteStay(c *gin.Context) {
	id := c.Param("id")
	var req dto.QuoteStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.rateService.QuotePlanStay(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
