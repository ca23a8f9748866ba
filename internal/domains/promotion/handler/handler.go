package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florist-backend/internal/domains/promotion/model"
	"florist-backend/internal/domains/promotion/service"
	"florist-backend/internal/shared/response"
)

type PromotionHandler struct {
	service service.ServiceInterface
}

func NewPromotionHandler(promotionService service.ServiceInterface) *PromotionHandler {
	return &PromotionHandler{service: promotionService}
}

// ValidateCode checks a promo code against a subtotal (public).
// POST /api/v1/promotions/validate
func (h *PromotionHandler) ValidateCode(c *gin.Context) {
	var req model.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", err)
		return
	}

	req.NormalizeCode()

	result, err := h.service.ValidateCode(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		response.InternalServerError(c, "failed to validate promo code")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Create registers a new promotion (admin).
// POST /api/v1/admin/promotions
func (h *PromotionHandler) Create(c *gin.Context) {
	var req model.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid promotion", err)
		return
	}

	promo, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateCode) {
			response.Conflict(c, "a promotion with this code already exists")
			return
		}
		response.InternalServerError(c, "failed to create promotion")
		return
	}

	response.Success(c, http.StatusCreated, promo)
}

// List returns promotions with pagination (admin).
// GET /api/v1/admin/promotions?page=1&limit=20
func (h *PromotionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	promotions, total, err := h.service.List(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(c, "failed to list promotions")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"promotions": promotions}, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// SetActive toggles a promotion on or off (admin).
// PATCH /api/v1/admin/promotions/:id/active
func (h *PromotionHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, "is_active is required")
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, model.ErrPromotionNotFound) {
			response.NotFound(c, "promotion not found")
			return
		}
		response.InternalServerError(c, "failed to update promotion")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "is_active": *req.IsActive})
}
