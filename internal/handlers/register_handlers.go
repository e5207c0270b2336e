package handlers

import (
	"github.com/dailyforge/journal_backend/cmd/docs"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/middleware"
	"github.com/dailyforge/journal_backend/internal/utils/validation"
	"github.com/dailyforge/journal_backend/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	limiter "github.com/ulule/limiter/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Register the denylist rule on gin's binding validator so DTO tags work.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterContentRules(v); err != nil {
			return err
		}
	}

	r.Use(cors.Default())

	// One limiter instance shared by every throttled route group; the
	// throttling policy is uniform across reads and writes.
	ipLimiter := middleware.NewSlidingWindowLimiter(cfg.RateLimitInterval)

	r.GET("/health", getHealth)

	registerAuthRoutes(r, cfg, services.Token, ipLimiter)

	setupAPIV1Routes(r, cfg, services, ipLimiter)

	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	ipLimiter *limiter.Limiter,
) {
	// Auth gates everything under v1, then the rate limiter.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RateLimit(ipLimiter))

	RegisterEntryRoutes(v1, services.Entry)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
