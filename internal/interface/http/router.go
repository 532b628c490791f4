package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/runready/internal/infra/config"
	"github.com/yanqian/runready/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, m *metrics.Manager) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger, m),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled && m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := router.Group("/api/v1")
	api.Use(
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		profileMiddleware(),
	)
	{
		api.GET("/advice", handler.Advice)
		api.GET("/forecast/weekly", handler.WeeklyForecast)
		api.GET("/forecast/chart", handler.ComfortChart)

		api.GET("/preferences", handler.GetPreferences)
		api.PATCH("/preferences", handler.UpdatePreferences)
		api.DELETE("/preferences", handler.ResetPreferences)

		api.GET("/locations/search", handler.SearchLocations)
		api.GET("/locations/reverse", handler.ReverseLocation)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
