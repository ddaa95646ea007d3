package app

import (
	"time"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/auth"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/cache"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/config"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/handlers"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))

	taskRepo := repo.NewPGTaskRepo(db)
	completionRepo := repo.NewPGCompletionRepo(db)
	focusRepo := repo.NewPGFocusRepo(db)
	statsCache := cache.NewStatsCache(rdb, cfg.Redis.DefaultTTL.Duration())

	taskSvc := service.NewTaskService(taskRepo, completionRepo, focusRepo, statsCache)
	progressSvc := service.NewProgressService(taskRepo, completionRepo, focusRepo, statsCache)
	analyticsSvc := service.NewAnalyticsService(taskRepo, completionRepo, statsCache)
	focusSvc := service.NewFocusService(taskRepo, focusRepo)

	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc))
	registerProgressRoutes(protected, handlers.NewProgressHandler(progressSvc))
	registerAnalyticsRoutes(protected, handlers.NewAnalyticsHandler(analyticsSvc))
	registerFocusRoutes(protected, handlers.NewFocusHandler(focusSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Tickr API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
}

func registerProgressRoutes(api *gin.RouterGroup, h *handlers.ProgressHandler) {
	api.POST("/tasks/:id/toggle", h.Toggle)
	api.GET("/tasks/progress/today", h.Today)
	api.POST("/tasks/progress/cleanup", h.Cleanup)
}

func registerAnalyticsRoutes(api *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	api.GET("/analytics", h.Get)
}

func registerFocusRoutes(api *gin.RouterGroup, h *handlers.FocusHandler) {
	api.GET("/focus", h.State)
	api.POST("/focus/enable", h.Enable)
	api.POST("/focus/disable", h.Disable)
	api.POST("/focus/tasks", h.Add)
	api.DELETE("/focus/tasks/:focusId", h.Remove)
	api.PUT("/focus/reorder", h.Reorder)
	api.GET("/focus/available", h.Available)
}
