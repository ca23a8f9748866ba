package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"florist-backend/internal/shared/middleware"
	"florist-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// health
	router.GET("/health", func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	})

	v1 := router.Group("/api/v1")
	auth := middleware.AuthMiddleware(c.JWTManager)

	// -------- public: catalog --------
	products := v1.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.GET("/:slug", c.ProductHandler.GetBySlug)
	}

	// -------- public: delivery availability --------
	delivery := v1.Group("/delivery")
	{
		delivery.GET("/slots", c.DeliveryHandler.ListSlots)
		delivery.GET("/availability", c.DeliveryHandler.CheckAvailability)
		delivery.GET("/holidays", c.DeliveryHandler.ListHolidays)
	}

	// -------- public: promotions & tracking & vendor signup --------
	v1.POST("/promotions/validate", c.PromotionHandler.ValidateCode)
	v1.GET("/orders/track/:orderNumber", c.OrderHandler.Track)
	v1.POST("/vendors/register", c.VendorHandler.Register)

	// -------- authenticated: cart, wishlist, checkout --------
	cart := v1.Group("/cart", auth)
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PATCH("/items/:id", c.CartHandler.UpdateItem)
		cart.DELETE("/items/:id", c.CartHandler.RemoveItem)
		cart.POST("/promo", c.CartHandler.ValidatePromo)
	}

	wishlist := v1.Group("/wishlist", auth)
	{
		wishlist.GET("", c.CartHandler.ListWishlist)
		wishlist.POST("", c.CartHandler.AddToWishlist)
		wishlist.DELETE("/:id", c.CartHandler.RemoveFromWishlist)
	}

	orders := v1.Group("/orders", auth)
	{
		orders.GET("", c.OrderHandler.ListMine)
		orders.POST("/checkout", c.OrderHandler.Checkout)
	}

	// -------- vendor --------
	vendor := v1.Group("/vendor", auth, middleware.VendorMiddleware())
	{
		vendor.POST("/products", c.ProductHandler.Create)
		vendor.PATCH("/products/:id", c.ProductHandler.Update)
		vendor.DELETE("/products/:id", c.ProductHandler.Delete)
		vendor.GET("/orders", c.OrderHandler.ListForVendor)
	}

	// -------- admin --------
	admin := v1.Group("/admin", auth, middleware.AdminMiddleware())
	{
		admin.POST("/holidays", c.DeliveryHandler.CreateHoliday)
		admin.DELETE("/holidays/:id", c.DeliveryHandler.DeleteHoliday)

		admin.GET("/orders", c.OrderHandler.ListAll)
		admin.PATCH("/orders/:id/status", c.OrderHandler.UpdateStatus)

		admin.GET("/promotions", c.PromotionHandler.List)
		admin.POST("/promotions", c.PromotionHandler.Create)
		admin.PATCH("/promotions/:id/active", c.PromotionHandler.SetActive)

		admin.GET("/vendors", c.VendorHandler.List)
		admin.POST("/vendors/:id/approve", c.VendorHandler.Approve)
		admin.POST("/vendors/:id/suspend", c.VendorHandler.Suspend)

		// admin can also manage store-owned products
		admin.POST("/products", c.ProductHandler.Create)
		admin.PATCH("/products/:id", c.ProductHandler.Update)
		admin.DELETE("/products/:id", c.ProductHandler.Delete)

		admin.POST("/notifications/self-test", c.NotifHandler.SelfTest)
	}

	return router
}
