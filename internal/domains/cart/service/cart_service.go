package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"florist-backend/internal/domains/cart/model"
	"florist-backend/internal/domains/cart/repository"
	productModel "florist-backend/internal/domains/product/model"
	productService "florist-backend/internal/domains/product/service"
	promoModel "florist-backend/internal/domains/promotion/model"
	promoService "florist-backend/internal/domains/promotion/service"
	"florist-backend/pkg/cache"
)

const (
	cartCacheTTL    = 5 * time.Minute
	cartCachePrefix = "cart:user:"
)

type ServiceInterface interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*model.CartView, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.CartView, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartView, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.CartView, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
	ValidatePromo(ctx context.Context, userID uuid.UUID, code string) (*promoModel.ValidationResult, error)
	ClearStale(ctx context.Context, olderThan time.Duration) (int64, error)

	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, itemID uuid.UUID) error
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)
}

type CartService struct {
	repo       repository.RepositoryInterface
	products   productService.ServiceInterface
	promotions promoService.ServiceInterface
	cache      cache.Cache
}

func NewCartService(
	repo repository.RepositoryInterface,
	products productService.ServiceInterface,
	promotions promoService.ServiceInterface,
	cache cache.Cache,
) ServiceInterface {
	return &CartService{
		repo:       repo,
		products:   products,
		promotions: promotions,
		cache:      cache,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartView, error) {
	cacheKey := cartCachePrefix + userID.String()

	var cached model.CartView
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	view, err := s.loadView(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, view, cartCacheTTL); err != nil {
		log.Warn().Err(err).Msg("[CartService] Failed to cache cart")
	}

	return view, nil
}

func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.CartView, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, productModel.ErrProductNotFound
	}
	if !product.InStock(req.Quantity) {
		return nil, productModel.ErrInsufficientStock
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if len(product.Images) > 0 {
		imageURL = product.Images[0]
	}

	item := &model.CartItem{
		CartID:      cart.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductSlug: product.Slug,
		UnitPrice:   product.Price,
		Quantity:    req.Quantity,
		ImageURL:    imageURL,
	}

	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return s.loadView(ctx, userID)
}

func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartView, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity == 0 {
		err = s.repo.RemoveItem(ctx, cart.ID, itemID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return s.loadView(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.CartView, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return s.loadView(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Clear(ctx, cart.ID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// ValidatePromo checks a code against the current cart subtotal
func (s *CartService) ValidatePromo(ctx context.Context, userID uuid.UUID, code string) (*promoModel.ValidationResult, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal()
	if subtotal.Equal(decimal.Zero) {
		return &promoModel.ValidationResult{
			IsValid:    false,
			Reason:     "Your cart is empty",
			FinalTotal: decimal.Zero,
		}, nil
	}

	return s.promotions.ValidateCode(ctx, code, subtotal)
}

// ClearStale drops carts untouched for longer than the retention window
func (s *CartService) ClearStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	count, err := s.repo.DeleteStale(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("[CartService] Cleared stale carts")
	}
	return count, nil
}

func (s *CartService) loadView(ctx context.Context, userID uuid.UUID) (*model.CartView, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.CartView{
		Cart:      cart,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}, nil
}

func (s *CartService) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, cartCachePrefix+userID.String()); err != nil {
		log.Warn().Err(err).Msg("[CartService] Cache invalidation failed")
	}
}

// =====================================================
// WISHLIST
// =====================================================

func (s *CartService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*model.WishlistItem, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if len(product.Images) > 0 {
		imageURL = product.Images[0]
	}

	item := &model.WishlistItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductSlug: product.Slug,
		UnitPrice:   product.Price,
		ImageURL:    imageURL,
	}

	if err := s.repo.AddWishlistItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.repo.RemoveWishlistItem(ctx, userID, itemID)
}

func (s *CartService) ListWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	return s.repo.ListWishlist(ctx, userID)
}
