package v1

import (
	"net/http"
	"time"

	"job-alerts-backend/config"
	"job-alerts-backend/internal/delivery/http/middleware"
	"job-alerts-backend/internal/delivery/http/response"
	"job-alerts-backend/internal/domain"
	"job-alerts-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AlertUC  domain.AlertUsecase
	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.GinMode == gin.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Config.RateLimitEnabled() {
		rl := middleware.DefaultRateLimitConfig()
		rl.Limit = deps.Config.RateLimitGlobalThreshold
		rl.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
		r.Use(middleware.RateLimit(rl))
	}
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewAlertHandler(v1, deps.AlertUC)
	NewMatchHandler(v1, deps.AlertUC)

	return r
}
