package http

import (
	"log/slog"
	"net/http"

	"warehouse/internal/generated/docs"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the warehouse API:
//
//	GET  /health      liveness probe
//	GET  /swagger/*   Swagger UI over the OpenAPI document
//	     /api/v1/...  ServerInterface routes, validated against the document
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	logger = logger.With("component", "http")

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = docs.Register(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
