package router

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/config"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/handler"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/middleware"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/repository"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/service"
	"github.com/dadinjaenudin/FoodBeverages-CMS/web"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	foodRepo := repository.NewFoodRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	categorySvc := service.NewCategoryService(categoryRepo)
	foodSvc := service.NewFoodService(foodRepo, categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usersH := handler.NewUsersHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	foodsH := handler.NewFoodsHandler(foodSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", handler.Welcome())
	r.GET("/health", handler.Health(db))

	authMW := middleware.JWTAuth(cfg.JWTSecret)
	staffWrite := middleware.RequireRole("admin", "manager")
	adminOnly := middleware.RequireRole("admin")

	api := r.Group("/api")
	{
		foods := api.Group("/foods")
		{
			foods.GET("", foodsH.List)
			foods.GET("/:id", foodsH.GetByID)
			foods.POST("", authMW, staffWrite, foodsH.Create)
			foods.PUT("/:id", authMW, staffWrite, foodsH.Update)
			foods.DELETE("/:id", authMW, adminOnly, foodsH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.GetByID)
			categories.POST("", authMW, staffWrite, categoriesH.Create)
			categories.PUT("/:id", authMW, staffWrite, categoriesH.Update)
			categories.DELETE("/:id", authMW, adminOnly, categoriesH.Delete)
		}

		users := api.Group("/users")
		{
			users.POST("/register", usersH.Register)
			users.POST("/login", usersH.Login)
			users.GET("", authMW, adminOnly, usersH.List)
		}
	}

	// Embedded admin dashboard
	r.StaticFS("/app", web.FS())

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
