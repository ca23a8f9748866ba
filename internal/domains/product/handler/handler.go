package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"florist-backend/internal/domains/product/model"
	"florist-backend/internal/domains/product/service"
	"florist-backend/internal/shared/response"
)

type ProductHandler struct {
	service service.ServiceInterface
}

func NewProductHandler(productService service.ServiceInterface) *ProductHandler {
	return &ProductHandler{service: productService}
}

// List returns the product catalog with filters.
// GET /api/v1/products?category=bouquets&occasion=birthday&featured=true
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := buildFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "failed to list products")
		return
	}

	page := filter.Offset/filter.Limit + 1
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"products": products}, &response.Meta{
		Page:  page,
		Limit: filter.Limit,
		Total: total,
	})
}

// GetBySlug returns one product for the detail page.
// GET /api/v1/products/:slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to get product")
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Create adds a product (vendor or admin).
// POST /api/v1/vendor/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid product", err)
		return
	}

	vendorID := vendorIDFromContext(c)

	product, err := h.service.Create(c.Request.Context(), vendorID, &req)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateSlug) {
			response.Conflict(c, "a product with this name already exists")
			return
		}
		response.InternalServerError(c, "failed to create product")
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// Update modifies a product (vendor or admin).
// PATCH /api/v1/vendor/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid update", err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to update product")
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Delete soft-deletes a product (vendor or admin).
// DELETE /api/v1/vendor/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to delete product")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func buildFilter(c *gin.Context) (*model.ProductFilter, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := &model.ProductFilter{
		Category: c.Query("category"),
		Occasion: c.Query("occasion"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, errors.New("vendor_id must be a UUID")
		}
		filter.VendorID = &id
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := c.Query("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.New("min_price must be a number")
		}
		filter.MinPrice = &d
	}
	if v := c.Query("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.New("max_price must be a number")
		}
		filter.MaxPrice = &d
	}

	return filter, nil
}

// vendorIDFromContext pulls the authenticated vendor's ID, if any.
// Admins create store-owned products with no vendor attached.
func vendorIDFromContext(c *gin.Context) *uuid.UUID {
	if c.GetString("role") != "vendor" {
		return nil
	}
	if raw, exists := c.Get("userID"); exists {
		if id, ok := raw.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}
