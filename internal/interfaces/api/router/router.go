package router

import (
	"fmt"
	"net/http"

	"backoffice/internal/interfaces/api/handler"
	"backoffice/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	NewsHandler *handler.NewsHandler
	Logger      logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	v1 := e.Group("/v1")
	v1.POST("/news/create", cfg.NewsHandler.CreateNews)
	v1.GET("/news/get", cfg.NewsHandler.ListNews)
	v1.GET("/news/get/by/id/:news_id", cfg.NewsHandler.GetNewsByID)
	v1.POST("/news/reminder", cfg.NewsHandler.RequestReminder)
	v1.DELETE("/news/reminder", cfg.NewsHandler.CancelReminder)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
