package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"volumetrico/internal/config"
	"volumetrico/internal/handler"
	"volumetrico/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
// gatherer may be nil when metrics are disabled.
func Setup(
	cfg *config.Config,
	validationH *handler.ValidationHandler,
	healthH *handler.HealthHandler,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/health", healthH.Liveness)

	if cfg.Metrics.Enabled && gatherer != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")

	reports := v1.Group("/reports")
	reports.POST("/validate", validationH.Validate)
	reports.POST("/validate-object", validationH.ValidateObject)

	return r
}
