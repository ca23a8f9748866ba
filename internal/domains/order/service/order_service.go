package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	cartService "florist-backend/internal/domains/cart/service"
	deliveryService "florist-backend/internal/domains/delivery/service"
	notifModel "florist-backend/internal/domains/notification/model"
	"florist-backend/internal/domains/order/model"
	"florist-backend/internal/domains/order/repository"
	productService "florist-backend/internal/domains/product/service"
	promoService "florist-backend/internal/domains/promotion/service"
	"florist-backend/internal/shared"
)

type ServiceInterface interface {
	Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error)
	Track(ctx context.Context, orderNumber string) (*model.TrackingView, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, note string) (*model.Order, error)
}

type OrderService struct {
	repo        repository.RepositoryInterface
	carts       cartService.ServiceInterface
	delivery    deliveryService.ServiceInterface
	promotions  promoService.ServiceInterface
	products    productService.ServiceInterface
	asynqClient *asynq.Client
	currency    string
	now         func() time.Time
}

func NewOrderService(
	repo repository.RepositoryInterface,
	carts cartService.ServiceInterface,
	delivery deliveryService.ServiceInterface,
	promotions promoService.ServiceInterface,
	products productService.ServiceInterface,
	asynqClient *asynq.Client,
	currency string,
) ServiceInterface {
	if currency == "" {
		currency = "INR"
	}
	return &OrderService{
		repo:        repo,
		carts:       carts,
		delivery:    delivery,
		promotions:  promotions,
		products:    products,
		asynqClient: asynqClient,
		currency:    currency,
		now:         time.Now,
	}
}

// Checkout turns the user's cart into an order.
//
// Steps: load cart, validate the delivery date/slot, apply promo, persist the
// order transactionally, then the post-commit effects (stock, promo usage,
// cart clear, confirmation dispatch). Post-commit failures are logged, never
// surfaced: the order exists at that point.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error) {
	view, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(view.Cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	deliveryDate, err := time.ParseInLocation("2006-01-02", req.Shipping.DeliveryDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid delivery date: %w", err)
	}

	slot, err := s.delivery.ValidateBooking(ctx, deliveryDate, req.Shipping.TimeSlot)
	if err != nil {
		return nil, err
	}

	subtotal := view.Subtotal

	discount := decimal.Zero
	var promoCode *string
	var promoID *uuid.UUID
	if req.PromoCode != "" {
		result, promo, err := s.promotions.ApplyCode(ctx, req.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
		if !result.IsValid {
			return nil, fmt.Errorf("%w: %s", model.ErrPromoRejected, result.Reason)
		}
		discount = result.DiscountAmount
		promoCode = &result.Code
		promoID = &promo.ID
	}

	surcharge := decimal.Zero
	if slot.Price != nil {
		surcharge = *slot.Price
	}

	order := &model.Order{
		OrderNumber:    generateOrderNumber(s.now()),
		UserID:         &userID,
		Status:         model.StatusPlaced,
		Currency:       s.currency,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		PromoCode:      promoCode,
		SlotSurcharge:  surcharge,
		TotalAmount:    subtotal.Sub(discount).Add(surcharge),
		Shipping:       req.Shipping,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
	}
	order.Shipping.TimeSlot = fmt.Sprintf("%s (%s)", slot.Label, slot.Display)

	for _, item := range view.Cart.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("total", order.TotalAmount.String()).
		Msg("[OrderService] Order placed")

	// post-commit effects
	for _, item := range order.Items {
		if err := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			log.Error().Err(err).
				Str("order_number", order.OrderNumber).
				Str("product_id", item.ProductID.String()).
				Msg("[OrderService] Stock adjustment failed")
		}
	}

	if promoID != nil {
		if err := s.promotions.RecordUsage(ctx, *promoID); err != nil {
			log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Promo usage not recorded")
		}
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Cart not cleared after checkout")
	}

	s.enqueueConfirmation(order)

	return order, nil
}

func (s *OrderService) Track(ctx context.Context, orderNumber string) (*model.TrackingView, error) {
	order, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListHistory(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &model.TrackingView{Order: order, History: history}, nil
}

func (s *OrderService) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves an order through the status machine and notifies the
// customer by email.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, note string) (*model.Order, error) {
	if !status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, order.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status, note); err != nil {
		return nil, err
	}
	order.Status = status

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("status", string(status)).
		Msg("[OrderService] Order status updated")

	s.enqueueStatusUpdate(order, status)

	return order, nil
}

// =====================================================
// TASK ENQUEUE
// =====================================================

func (s *OrderService) enqueueConfirmation(order *model.Order) {
	if s.asynqClient == nil {
		return
	}

	payload := notifModel.SendOrderConfirmationPayload{OrderData: toOrderData(order)}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Confirmation payload marshal failed")
		return
	}

	task := asynq.NewTask(shared.TypeSendOrderConfirmation, data)
	if _, err := s.asynqClient.Enqueue(task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(3),
	); err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Confirmation task not enqueued")
	}
}

func (s *OrderService) enqueueStatusUpdate(order *model.Order, status model.OrderStatus) {
	if s.asynqClient == nil {
		return
	}

	payload := notifModel.SendStatusUpdatePayload{
		OrderData: toOrderData(order),
		NewStatus: string(status),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Status payload marshal failed")
		return
	}

	task := asynq.NewTask(shared.TypeSendOrderStatusUpdate, data)
	if _, err := s.asynqClient.Enqueue(task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(3),
	); err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("[OrderService] Status task not enqueued")
	}
}

// toOrderData projects the order into the shape the dispatcher renders from
func toOrderData(order *model.Order) notifModel.OrderData {
	items := make([]notifModel.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, notifModel.OrderItem{
			Product:    item.ProductName,
			Quantity:   item.Quantity,
			Price:      item.UnitPrice,
			FinalPrice: item.LineTotal,
		})
	}

	return notifModel.OrderData{
		Order: notifModel.OrderSummary{
			OrderNumber: order.OrderNumber,
			CreatedAt:   order.CreatedAt,
			Currency:    order.Currency,
			TotalAmount: order.TotalAmount,
			ShippingDetails: notifModel.ShippingDetails{
				FullName:     order.Shipping.FullName,
				Address:      order.Shipping.Address,
				Apartment:    order.Shipping.Apartment,
				City:         order.Shipping.City,
				State:        order.Shipping.State,
				ZipCode:      order.Shipping.ZipCode,
				Phone:        order.Shipping.Phone,
				DeliveryDate: order.Shipping.DeliveryDate,
				TimeSlot:     order.Shipping.TimeSlot,
				Notes:        order.Shipping.Notes,
			},
		},
		Customer: notifModel.Customer{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
		Items: items,
	}
}

// generateOrderNumber builds a human-friendly unique order number,
// e.g. FL-20251220-4F9A1C
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("FL-%s-%s", now.Format("20060102"), suffix)
}
