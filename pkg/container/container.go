package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"florist-backend/internal/config"
	infraCache "florist-backend/internal/infrastructure/cache"
	"florist-backend/internal/infrastructure/database"
	"florist-backend/internal/infrastructure/email"
	"florist-backend/internal/infrastructure/messaging"
	"florist-backend/pkg/cache"
	"florist-backend/pkg/jwt"

	cartHandler "florist-backend/internal/domains/cart/handler"
	cartRepo "florist-backend/internal/domains/cart/repository"
	cartService "florist-backend/internal/domains/cart/service"
	deliveryClient "florist-backend/internal/domains/delivery/client"
	deliveryHandler "florist-backend/internal/domains/delivery/handler"
	deliveryRepo "florist-backend/internal/domains/delivery/repository"
	deliveryService "florist-backend/internal/domains/delivery/service"
	notifHandler "florist-backend/internal/domains/notification/handler"
	notifRepo "florist-backend/internal/domains/notification/repository"
	notifService "florist-backend/internal/domains/notification/service"
	orderHandler "florist-backend/internal/domains/order/handler"
	orderRepo "florist-backend/internal/domains/order/repository"
	orderService "florist-backend/internal/domains/order/service"
	productHandler "florist-backend/internal/domains/product/handler"
	productRepo "florist-backend/internal/domains/product/repository"
	productService "florist-backend/internal/domains/product/service"
	promoHandler "florist-backend/internal/domains/promotion/handler"
	promoRepo "florist-backend/internal/domains/promotion/repository"
	promoService "florist-backend/internal/domains/promotion/service"
	vendorHandler "florist-backend/internal/domains/vendors/handler"
	vendorRepo "florist-backend/internal/domains/vendors/repository"
	vendorService "florist-backend/internal/domains/vendors/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	// Delivery
	DeliveryRepo    deliveryRepo.RepositoryInterface
	DeliveryService deliveryService.ServiceInterface
	DeliveryHandler *deliveryHandler.DeliveryHandler

	// Notification
	DeliveryLogRepo notifRepo.DeliveryLogRepository
	Dispatcher      notifService.DispatcherInterface
	NotifHandler    *notifHandler.NotificationHandler

	// Product
	ProductRepo    productRepo.RepositoryInterface
	ProductService productService.ServiceInterface
	ProductHandler *productHandler.ProductHandler

	// Promotion
	PromotionRepo    promoRepo.RepositoryInterface
	PromotionService promoService.ServiceInterface
	PromotionHandler *promoHandler.PromotionHandler

	// Cart
	CartRepo    cartRepo.RepositoryInterface
	CartService cartService.ServiceInterface
	CartHandler *cartHandler.CartHandler

	// Order
	OrderRepo    orderRepo.RepositoryInterface
	OrderService orderService.ServiceInterface
	OrderHandler *orderHandler.OrderHandler

	// Vendor
	VendorRepo    vendorRepo.RepositoryInterface
	VendorService vendorService.ServiceInterface
	VendorHandler *vendorHandler.VendorHandler
}

// NewContainer builds the whole dependency graph
func NewContainer() (*Container, error) {
	c := &Container{}

	// -------- config --------
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("[Container] Config loaded")

	// -------- database --------
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("[Container] Database connected")

	// -------- redis cache --------
	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("redis health check failed: %w", err)
	}
	log.Info().Msg("[Container] Redis connected")

	// -------- jwt / queue client --------
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c.buildDomains()

	log.Info().Msg("[Container] Dependency graph ready")
	return c, nil
}

func (c *Container) buildDomains() {
	cfg := c.Config
	pool := c.DB.Pool

	// -------- delivery --------
	holidayClient := deliveryClient.NewHolidayClient(
		cfg.Holiday.BaseURL,
		time.Duration(cfg.Holiday.TimeoutSeconds)*time.Second,
	)
	c.DeliveryRepo = deliveryRepo.NewPostgresRepository(pool)
	c.DeliveryService = deliveryService.NewDeliveryService(
		holidayClient,
		c.DeliveryRepo,
		c.Cache,
		time.Duration(cfg.Holiday.CacheTTLHours)*time.Hour,
	)
	c.DeliveryHandler = deliveryHandler.NewDeliveryHandler(c.DeliveryService)

	// -------- notification --------
	// NewSMTPProvider and NewTwilioProvider return nil when unconfigured.
	// Assigning a typed nil pointer to the interface would make the nil
	// checks inside the dispatcher pass, so only assign when non-nil.
	var emailProvider notifService.EmailProvider
	if p := email.NewSMTPProvider(cfg.SMTP); p != nil {
		emailProvider = p
	}
	var messageProvider notifService.MessageProvider
	if p := messaging.NewTwilioProvider(cfg.Twilio); p != nil {
		messageProvider = p
	}

	c.DeliveryLogRepo = notifRepo.NewPostgresRepository(pool)
	c.Dispatcher = notifService.NewDispatcher(emailProvider, messageProvider, c.DeliveryLogRepo)
	c.NotifHandler = notifHandler.NewNotificationHandler(c.Dispatcher)

	// -------- product --------
	c.ProductRepo = productRepo.NewPostgresRepository(pool)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.Cache)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)

	// -------- promotion --------
	c.PromotionRepo = promoRepo.NewPostgresRepository(pool)
	c.PromotionService = promoService.NewPromotionService(c.PromotionRepo)
	c.PromotionHandler = promoHandler.NewPromotionHandler(c.PromotionService)

	// -------- cart --------
	c.CartRepo = cartRepo.NewPostgresRepository(pool)
	c.CartService = cartService.NewCartService(c.CartRepo, c.ProductService, c.PromotionService, c.Cache)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)

	// -------- order --------
	c.OrderRepo = orderRepo.NewPostgresRepository(pool)
	c.OrderService = orderService.NewOrderService(
		c.OrderRepo,
		c.CartService,
		c.DeliveryService,
		c.PromotionService,
		c.ProductService,
		c.AsynqClient,
		cfg.App.Currency,
	)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)

	// -------- vendor --------
	c.VendorRepo = vendorRepo.NewPostgresRepository(pool)
	c.VendorService = vendorService.NewVendorService(c.VendorRepo)
	c.VendorHandler = vendorHandler.NewVendorHandler(c.VendorService)
}

// Cleanup releases infrastructure connections in reverse order
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("[Container] Asynq client close failed")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("[Container] Redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("[Container] Cleaned up")
}
