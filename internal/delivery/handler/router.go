package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/application/validation"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

const maxBodySize = "1M"

type RouterConfig struct {
	Version        string
	AllowedOrigins []string
	PingDB         PingFunc
}

type Services struct {
	Auth       interfaces.AuthService
	Users      interfaces.UserService
	Properties interfaces.PropertyService
}

// NewRouter builds the echo instance serving the whole API.
func NewRouter(cfg RouterConfig, services Services, logger *logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	e.Validator = requestValidator{}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered", "path", c.Path(), "error", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
	}))
	e.Use(middleware.BodyLimit(maxBodySize))

	authn := NewAuthenticator(services.Auth, logger)

	system := NewSystemHandler(cfg.Version, cfg.PingDB, logger)
	e.GET("/", system.Root)
	e.GET("/health", system.Health)

	api := e.Group("/api")
	NewAuthHandler(services.Auth).RegisterRoutes(api.Group("/auth"), authn)
	NewPropertyHandler(services.Properties).RegisterRoutes(api.Group("/properties"), authn)
	NewUserHandler(services.Users).RegisterRoutes(api.Group("/users"), authn)

	return e
}

// requestValidator runs the `validate` tags of bound payloads.
type requestValidator struct{}

func (requestValidator) Validate(i any) error {
	return validation.Struct(i)
}

func requestLogger(logger *logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
