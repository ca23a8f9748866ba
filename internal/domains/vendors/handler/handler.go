package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florist-backend/internal/domains/vendors/model"
	"florist-backend/internal/domains/vendors/service"
	"florist-backend/internal/shared/response"
)

type VendorHandler struct {
	service service.ServiceInterface
}

func NewVendorHandler(vendorService service.ServiceInterface) *VendorHandler {
	return &VendorHandler{service: vendorService}
}

// Register accepts a vendor application.
// POST /api/v1/vendors/register
func (h *VendorHandler) Register(c *gin.Context) {
	var req model.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid registration", err)
		return
	}

	vendor, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			response.Conflict(c, "this email is already registered")
			return
		}
		response.InternalServerError(c, "failed to register vendor")
		return
	}

	response.Success(c, http.StatusCreated, vendor)
}

// List returns vendors, optionally filtered by status (admin).
// GET /api/v1/admin/vendors?status=pending
func (h *VendorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	vendors, total, err := h.service.List(c.Request.Context(), model.VendorStatus(c.Query("status")), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(c, "failed to list vendors")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"vendors": vendors}, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Approve activates a pending vendor (admin).
// POST /api/v1/admin/vendors/:id/approve
func (h *VendorHandler) Approve(c *gin.Context) {
	h.setStatus(c, h.service.Approve, "approved")
}

// Suspend blocks a vendor (admin).
// POST /api/v1/admin/vendors/:id/suspend
func (h *VendorHandler) Suspend(c *gin.Context) {
	h.setStatus(c, h.service.Suspend, "suspended")
}

func (h *VendorHandler) setStatus(c *gin.Context, action func(ctx context.Context, id uuid.UUID) error, label string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vendor id")
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrVendorNotFound) {
			response.NotFound(c, "vendor not found")
			return
		}
		response.InternalServerError(c, "failed to update vendor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": label})
}
