package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"florist-backend/internal/domains/product/model"
	"florist-backend/internal/domains/product/repository"
	"florist-backend/internal/shared/utils"
	"florist-backend/pkg/cache"
)

const (
	productCacheTTL     = 10 * time.Minute
	productCachePrefix  = "product:slug:"
	productCachePattern = "product:*"
)

type ServiceInterface interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, vendorID *uuid.UUID, req *model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewProductService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ProductService) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug serves the product detail page, cache-first
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	cacheKey := productCachePrefix + slug

	var cached model.Product
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, product, productCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("[ProductService] Failed to cache product")
	}

	return product, nil
}

func (s *ProductService) Create(ctx context.Context, vendorID *uuid.UUID, req *model.CreateProductRequest) (*model.Product, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	product := &model.Product{
		VendorID:     vendorID,
		Name:         req.Name,
		Slug:         utils.GenerateSlug(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Currency:     currency,
		Category:     req.Category,
		Occasions:    req.Occasions,
		Images:       req.Images,
		Stock:        req.Stock,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", product.ID.String()).
		Str("slug", product.Slug).
		Msg("[ProductService] Product created")

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ComparePrice != nil {
		product.ComparePrice = req.ComparePrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Occasions != nil {
		product.Occasions = req.Occasions
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return product, nil
}

func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	if err := s.repo.AdjustStock(ctx, id, delta); err != nil {
		return fmt.Errorf("stock adjustment for %s: %w", id, err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, productCachePattern); err != nil {
		log.Warn().Err(err).Msg("[ProductService] Cache invalidation failed")
	}
}
