package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florist-backend/internal/domains/cart/model"
	"florist-backend/internal/domains/cart/service"
	productModel "florist-backend/internal/domains/product/model"
	"florist-backend/internal/shared/response"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(cartService service.ServiceInterface) *CartHandler {
	return &CartHandler{service: cartService}
}

// GetCart returns the caller's cart with totals.
// GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	view, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "failed to get cart")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// AddItem adds a product to the cart.
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid item", err)
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, productModel.ErrProductNotFound):
			response.NotFound(c, "product not found")
		case errors.Is(err, productModel.ErrInsufficientStock):
			response.Conflict(c, "not enough stock for this product")
		default:
			response.InternalServerError(c, "failed to add item")
		}
		return
	}

	response.Success(c, http.StatusOK, view)
}

// UpdateItem changes a line quantity. Quantity 0 removes the line.
// PATCH /api/v1/cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid quantity", err)
		return
	}

	view, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			response.NotFound(c, "cart item not found")
			return
		}
		response.InternalServerError(c, "failed to update item")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// RemoveItem deletes a cart line.
// DELETE /api/v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	view, err := h.service.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			response.NotFound(c, "cart item not found")
			return
		}
		response.InternalServerError(c, "failed to remove item")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// ClearCart empties the cart.
// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), userID); err != nil {
		response.InternalServerError(c, "failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// ValidatePromo checks a promo code against the caller's cart.
// POST /api/v1/cart/promo
func (h *CartHandler) ValidatePromo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		response.BadRequest(c, "code is required")
		return
	}

	result, err := h.service.ValidatePromo(c.Request.Context(), userID, req.Code)
	if err != nil {
		response.InternalServerError(c, "failed to validate promo code")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// =====================================================
// WISHLIST
// =====================================================

// AddToWishlist saves a product for later.
// POST /api/v1/wishlist
func (h *CartHandler) AddToWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "product_id must be a UUID")
		return
	}

	item, err := h.service.AddToWishlist(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, productModel.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to add to wishlist")
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// RemoveFromWishlist deletes a saved product.
// DELETE /api/v1/wishlist/:id
func (h *CartHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	if err := h.service.RemoveFromWishlist(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, model.ErrWishlistNotFound) {
			response.NotFound(c, "wishlist item not found")
			return
		}
		response.InternalServerError(c, "failed to remove wishlist item")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListWishlist returns the caller's saved products.
// GET /api/v1/wishlist
func (h *CartHandler) ListWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.service.ListWishlist(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "failed to list wishlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
