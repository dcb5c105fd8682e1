// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/config"
	"github.com/pricetrack/pricetrack-backend/internal/handlers"
	"github.com/pricetrack/pricetrack-backend/internal/middleware"
	"github.com/pricetrack/pricetrack-backend/internal/repository"
	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	availabilityRepo := repository.NewAvailabilityRepository(db)

	catalogService := services.NewCatalogService(db)
	availabilityService := services.NewAvailabilityService(availabilityRepo)
	listingService := services.NewListingService(db)
	promotionService := services.NewPromotionService(db)
	alertService := services.NewAlertService(db)
	authService := services.NewAuthService(db, cfg)

	// Initialize handlers
	brandHandler := handlers.NewBrandHandler(catalogService)
	productDetailHandler := handlers.NewProductDetailHandler(catalogService, availabilityService)
	retailStoreHandler := handlers.NewRetailStoreHandler(catalogService)
	retailerHandler := handlers.NewRetailerHandler(catalogService)
	listingHandler := handlers.NewListingHandler(listingService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	alertHandler := handlers.NewAlertHandler(alertService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Brand routes
	brands := r.Group("/brands")
	{
		brands.GET("", brandHandler.GetBrands)
		brands.GET("/:id", brandHandler.GetBrand)
		brands.POST("", brandHandler.CreateBrand)
		brands.PUT("/:id", brandHandler.UpdateBrand)
		brands.PATCH("/:id", brandHandler.UpdateBrand)
		brands.DELETE("/:id", brandHandler.DeleteBrand)
	}

	// Product detail routes
	productDetails := r.Group("/product-details")
	{
		productDetails.GET("", productDetailHandler.GetProductDetails)
		productDetails.GET("/:id", productDetailHandler.GetProductDetail)
		productDetails.POST("", productDetailHandler.CreateProductDetail)
		productDetails.PUT("/:id", productDetailHandler.UpdateProductDetail)
		productDetails.PATCH("/:id", productDetailHandler.UpdateProductDetail)
		productDetails.DELETE("/:id", productDetailHandler.DeleteProductDetail)

		// Availability + promotion view
		productDetails.GET("/product/:id", productDetailHandler.GetProductAvailability)
	}

	// Retail store routes
	retailStores := r.Group("/retail-stores")
	{
		retailStores.GET("", retailStoreHandler.GetRetailStores)
		retailStores.GET("/:id", retailStoreHandler.GetRetailStore)
		retailStores.POST("", retailStoreHandler.CreateRetailStore)
		retailStores.PUT("/:id", retailStoreHandler.UpdateRetailStore)
		retailStores.PATCH("/:id", retailStoreHandler.UpdateRetailStore)
		retailStores.DELETE("/:id", retailStoreHandler.DeleteRetailStore)
	}

	// Retailer routes
	retailers := r.Group("/retailers")
	{
		retailers.GET("", retailerHandler.GetRetailers)
		retailers.GET("/:id", retailerHandler.GetRetailer)
		retailers.POST("", retailerHandler.CreateRetailer)
		retailers.PUT("/:id", retailerHandler.UpdateRetailer)
		retailers.PATCH("/:id", retailerHandler.UpdateRetailer)
		retailers.DELETE("/:id", retailerHandler.DeleteRetailer)
	}

	// Listing routes ("products" resource), no DELETE
	products := r.Group("/products")
	{
		products.GET("", listingHandler.GetListings)
		products.GET("/all", listingHandler.GetAllProducts)
		products.GET("/:id", listingHandler.GetListing)
		products.POST("", listingHandler.CreateListing)
		products.PUT("/:id", listingHandler.UpdateListing)
		products.PATCH("/:id", listingHandler.UpdateListing)
	}

	// Promotion routes, read plus the dedicated create endpoint
	promotions := r.Group("/promotions")
	{
		promotions.GET("", promotionHandler.GetPromotions)
		promotions.GET("/:id", promotionHandler.GetPromotion)
		promotions.POST("", promotionHandler.CreateProhibited)
		promotions.POST("/create", promotionHandler.RunPromotion)
	}

	// Alert routes, read only
	alerts := r.Group("/alerts")
	{
		alerts.GET("", alertHandler.GetAlerts)
		alerts.GET("/:id", alertHandler.GetAlert)
	}

	// User routes
	users := r.Group("/users")
	{
		login := users.Group("")
		login.Use(middleware.AuthRateLimit())
		{
			login.POST("/login", authHandler.Login)
			login.POST("/register", authHandler.Register)
		}

		protected := users.Group("")
		protected.Use(middleware.AuthRequired(db))
		{
			protected.GET("", authHandler.GetUsers)
			protected.GET("/:id", authHandler.GetUser)
		}
	}

	// Framework-style token issuance
	r.POST("/api-token-auth/", middleware.AuthRateLimit(), authHandler.ObtainAuthToken)

	return r
}
