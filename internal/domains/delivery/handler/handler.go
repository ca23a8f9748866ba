package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florist-backend/internal/domains/delivery/model"
	"florist-backend/internal/domains/delivery/service"
	"florist-backend/internal/shared/response"
)

type DeliveryHandler struct {
	service service.ServiceInterface
}

func NewDeliveryHandler(deliveryService service.ServiceInterface) *DeliveryHandler {
	return &DeliveryHandler{service: deliveryService}
}

// ListSlots returns the slot catalog evaluated against an optional date.
// GET /api/v1/delivery/slots?date=2025-12-20
func (h *DeliveryHandler) ListSlots(c *gin.Context) {
	date, err := parseOptionalDate(c.Query("date"))
	if err != nil {
		response.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	slots := h.service.ListSlots(c.Request.Context(), date)
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

// CheckAvailability returns the availability decision for one date.
// GET /api/v1/delivery/availability?date=2025-12-25
func (h *DeliveryHandler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		response.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	availability := h.service.CheckDate(c.Request.Context(), date)
	response.Success(c, http.StatusOK, availability)
}

// ListHolidays returns the effective holiday set for a year.
// GET /api/v1/delivery/holidays?year=2025
func (h *DeliveryHandler) ListHolidays(c *gin.Context) {
	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "year must be a number")
			return
		}
		year = parsed
	}

	holidays := h.service.GetHolidays(c.Request.Context(), year)
	response.Success(c, http.StatusOK, gin.H{"holidays": holidays, "year": year})
}

// CreateHoliday closes the store on a day (admin).
// POST /api/v1/admin/holidays
func (h *DeliveryHandler) CreateHoliday(c *gin.Context) {
	var req model.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid holiday", err)
		return
	}

	holiday, err := h.service.CreateStoreHoliday(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to create holiday")
		return
	}

	response.Success(c, http.StatusCreated, holiday)
}

// DeleteHoliday removes a store closure (admin).
// DELETE /api/v1/admin/holidays/:id
func (h *DeliveryHandler) DeleteHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid holiday id")
		return
	}

	if err := h.service.DeleteStoreHoliday(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrHolidayNotFound) {
			response.NotFound(c, "holiday not found")
			return
		}
		response.InternalServerError(c, "failed to delete holiday")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
