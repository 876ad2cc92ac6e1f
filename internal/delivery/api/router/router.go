// Package router mounts the API routes and their middleware chain.
package router

import (
	"time"

	"logistics/config"
	"logistics/internal/delivery/api/middleware"
	"logistics/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// rateLimitWindow is the period RequestsPerMinute is measured over.
const rateLimitWindow = time.Minute

type RouterParams struct {
	fx.In

	Handlers        *handler.Handlers
	ViewHandler     *handler.ViewHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	CacheMiddleware *middleware.CacheMiddleware
	Config          *config.Config
}

type router struct {
	handlers        *handler.Handlers
	viewHandler     *handler.ViewHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	cacheMiddleware *middleware.CacheMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		handlers:        params.Handlers,
		viewHandler:     params.ViewHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		cacheMiddleware: params.CacheMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Trailing slashes are optional on every route.
	e.Pre(echomiddleware.RemoveTrailingSlash())

	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api", r.apiMiddleware()...)

	// Static view paths are registered alongside the item routes; echo matches them first.
	api.GET("/shipments/delivered", r.viewHandler.DeliveredShipments)
	api.GET("/shipments/not-delivered", r.viewHandler.NotDeliveredShipments)
	api.GET("/shipments/:id/customer", r.viewHandler.ShipmentCustomer)
	api.GET("/customers/:id/shipments", r.viewHandler.CustomerShipments)
	api.GET("/employeemanagesshipments/:id/status", r.viewHandler.ManagementStatus)

	r.handlers.Employees.Register(api, "/employees", "id")
	r.handlers.Memberships.Register(api, "/memberships", "id")
	r.handlers.Customers.Register(api, "/customers", "id")
	r.handlers.Shipments.Register(api, "/shipments", "id")
	r.handlers.Payments.Register(api, "/payments", "payment_id")
	r.handlers.Statuses.Register(api, "/statuses", "id")
	r.handlers.Management.Register(api, "/employeemanagesshipments", "id")
}

// apiMiddleware is the chain in front of every /api route: authentication,
// throttling, the request deadline and finally the response cache.
func (r *router) apiMiddleware() []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{r.authMiddleware.Authenticate}

	if rpm := r.config.HTTP.RequestsPerMinute; rpm > 0 {
		store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rpm) / rateLimitWindow.Seconds()),
			Burst:     rpm,
			ExpiresIn: 3 * rateLimitWindow,
		})
		chain = append(chain, echomiddleware.RateLimiter(store))
	}

	if timeout := r.config.HTTP.Timeouts.RequestTimeout; timeout > 0 {
		chain = append(chain, echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: timeout,
		}))
	}

	return append(chain, r.cacheMiddleware.Handle)
}
