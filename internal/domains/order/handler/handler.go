package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	deliveryModel "florist-backend/internal/domains/delivery/model"
	"florist-backend/internal/domains/order/model"
	"florist-backend/internal/domains/order/service"
	"florist-backend/internal/shared/response"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(orderService service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: orderService}
}

// Checkout places an order from the caller's cart.
// POST /api/v1/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid checkout request", err)
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyCart):
			response.BadRequest(c, "your cart is empty")
		case errors.Is(err, deliveryModel.ErrDateNotBookable),
			errors.Is(err, deliveryModel.ErrSlotNotBookable):
			response.ErrorResponse(c, http.StatusUnprocessableEntity, "DELIVERY_UNAVAILABLE", err.Error())
		case errors.Is(err, model.ErrPromoRejected):
			response.ErrorResponse(c, http.StatusUnprocessableEntity, "PROMO_REJECTED", err.Error())
		default:
			response.InternalServerError(c, "failed to place order")
		}
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// Track returns an order with its status history by order number.
// GET /api/v1/orders/track/:orderNumber
func (h *OrderHandler) Track(c *gin.Context) {
	tracking, err := h.service.Track(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.InternalServerError(c, "failed to track order")
		return
	}

	response.Success(c, http.StatusOK, tracking)
}

// ListMine returns the caller's own orders.
// GET /api/v1/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	filter := buildFilter(c)
	filter.UserID = &userID

	h.list(c, filter)
}

// ListAll returns all orders (admin).
// GET /api/v1/admin/orders?status=placed
func (h *OrderHandler) ListAll(c *gin.Context) {
	h.list(c, buildFilter(c))
}

// ListForVendor returns orders containing the vendor's products.
// GET /api/v1/vendor/orders
func (h *OrderHandler) ListForVendor(c *gin.Context) {
	vendorID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	filter := buildFilter(c)
	filter.VendorID = &vendorID

	h.list(c, filter)
}

func (h *OrderHandler) list(c *gin.Context, filter *model.OrderFilter) {
	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "failed to list orders")
		return
	}

	page := filter.Offset/filter.Limit + 1
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"orders": orders}, &response.Meta{
		Page:  page,
		Limit: filter.Limit,
		Total: total,
	})
}

// UpdateStatus moves an order through the status machine (admin).
// PATCH /api/v1/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status request", err)
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, model.OrderStatus(req.Status), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(err, model.ErrInvalidStatus), errors.Is(err, model.ErrInvalidTransition):
			response.ErrorResponse(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error())
		default:
			response.InternalServerError(c, "failed to update order status")
		}
		return
	}

	response.Success(c, http.StatusOK, order)
}

func buildFilter(c *gin.Context) *model.OrderFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return &model.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
