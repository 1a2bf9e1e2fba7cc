// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/config"
	"github.com/hearthmade/storefront-backend/internal/handlers"
	"github.com/hearthmade/storefront-backend/internal/middleware"
	"github.com/hearthmade/storefront-backend/internal/services"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, cache *services.CacheService, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	catalogService := services.NewCatalogService(db, cache)
	reviewService := services.NewReviewService(db)
	adminService := services.NewAdminService(db, catalogService)
	userService := services.NewUserService(db)
	authService := services.NewAuthService(db, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if err := cache.Ping(); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	})

	// Authentication routes
	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Public catalog routes. The :ref segment is the slug for the product
	// detail route and the product id for the review routes; gin requires
	// one param name at this position.
	products := r.Group("/products")
	{
		products.GET("", middleware.OptionalAuth(), productHandler.List)
		products.GET("/:ref", middleware.OptionalAuth(), productHandler.Get)
		products.GET("/:ref/reviews", middleware.OptionalAuth(), reviewHandler.List)
		products.POST("/:ref/reviews", middleware.AuthRequired(), reviewHandler.Create)
	}

	// Profile routes
	users := r.Group("/users")
	users.Use(middleware.AuthRequired())
	{
		users.GET("/me", userHandler.Me)
		users.PATCH("/me", userHandler.Update)
		users.POST("/ensure", userHandler.Ensure)
	}

	// Admin routes
	admin := r.Group("/admin/products")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("", adminHandler.List)
		admin.POST("", adminHandler.Create)
		admin.PATCH("/:id", adminHandler.Patch)
		admin.DELETE("/:id", adminHandler.Delete)
		admin.POST("/upload-image", middleware.UploadRateLimit(), adminHandler.UploadImage)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
