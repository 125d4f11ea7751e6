// Package http exposes the order lifecycle and admin operations over an echo
// HTTP API. Handlers translate between JSON payloads and use case commands,
// and map the error taxonomy onto status codes.
package http

import (
	"errors"
	"net/http"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	addProofHandler          commands.AddProofCommandHandler
	createCustomerHandler    commands.CreateCustomerCommandHandler
	addAddressHandler        commands.AddAddressCommandHandler
	removeAddressHandler     commands.RemoveAddressCommandHandler
	createWorkerHandler      commands.CreateWorkerCommandHandler
	approveWorkerHandler     commands.ApproveWorkerCommandHandler
	setAvailabilityHandler   commands.SetWorkerAvailabilityCommandHandler
	createPricingHandler     commands.CreatePricingOptionCommandHandler
	updatePricingHandler     commands.UpdatePricingOptionCommandHandler

	// Query handlers; single-entity reads go through the caching decorators.
	orderByIDHandler         queries.OrderByIDHandler
	ordersByCustomerHandler  queries.GetOrdersByCustomerIDQueryHandler
	ordersByWorkerHandler    queries.GetOrdersByWorkerIDQueryHandler
	ordersByStatusHandler    queries.GetOrdersByStatusQueryHandler
	availableWorkersHandler  queries.GetAvailableWorkersByRoleQueryHandler
	pricingOptionsHandler    queries.PricingOptionsHandler
	pricingOptionByIDHandler queries.PricingOptionByIDHandler
}

// Handlers bundles every use case handler the server exposes.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AddProof          commands.AddProofCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler
	AddAddress        commands.AddAddressCommandHandler
	RemoveAddress     commands.RemoveAddressCommandHandler
	CreateWorker      commands.CreateWorkerCommandHandler
	ApproveWorker     commands.ApproveWorkerCommandHandler
	SetAvailability   commands.SetWorkerAvailabilityCommandHandler
	CreatePricing     commands.CreatePricingOptionCommandHandler
	UpdatePricing     commands.UpdatePricingOptionCommandHandler

	OrderByID         queries.OrderByIDHandler
	OrdersByCustomer  queries.GetOrdersByCustomerIDQueryHandler
	OrdersByWorker    queries.GetOrdersByWorkerIDQueryHandler
	OrdersByStatus    queries.GetOrdersByStatusQueryHandler
	AvailableWorkers  queries.GetAvailableWorkersByRoleQueryHandler
	PricingOptions    queries.PricingOptionsHandler
	PricingOptionByID queries.PricingOptionByIDHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:       handlers.CreateOrder,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		addProofHandler:          handlers.AddProof,
		createCustomerHandler:    handlers.CreateCustomer,
		addAddressHandler:        handlers.AddAddress,
		removeAddressHandler:     handlers.RemoveAddress,
		createWorkerHandler:      handlers.CreateWorker,
		approveWorkerHandler:     handlers.ApproveWorker,
		setAvailabilityHandler:   handlers.SetAvailability,
		createPricingHandler:     handlers.CreatePricing,
		updatePricingHandler:     handlers.UpdatePricing,
		orderByIDHandler:         handlers.OrderByID,
		ordersByCustomerHandler:  handlers.OrdersByCustomer,
		ordersByWorkerHandler:    handlers.OrdersByWorker,
		ordersByStatusHandler:    handlers.OrdersByStatus,
		availableWorkersHandler:  handlers.AvailableWorkers,
		pricingOptionsHandler:    handlers.PricingOptions,
		pricingOptionByIDHandler: handlers.PricingOptionByID,
	}
}

// RegisterRoutes mounts every route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:orderId", s.GetOrderByID)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/proof", s.AddProofToOrder)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:customerId/orders", s.GetOrdersByCustomerID)
	api.POST("/customers/:customerId/addresses", s.AddAddress)
	api.DELETE("/customers/:customerId/addresses/:addressId", s.RemoveAddress)

	api.POST("/workers", s.CreateWorker)
	api.GET("/workers/available/:role", s.GetAvailableWorkers)
	api.GET("/workers/:workerId/orders", s.GetOrdersByWorkerID)
	api.POST("/workers/:workerId/approve", s.ApproveWorker)
	api.PUT("/workers/:workerId/availability", s.SetWorkerAvailability)

	api.POST("/pricing-options", s.CreatePricingOption)
	api.PUT("/pricing-options/:pricingOptionId", s.UpdatePricingOption)
	api.GET("/pricing-options", s.GetPricingOptions)
	api.GET("/pricing-options/:pricingOptionId", s.GetPricingOptionByID)
}

// Error is the JSON error payload returned on every failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps the error taxonomy onto HTTP status codes: not-found 404,
// validation 400, state and version conflicts 409, everything else 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalState), errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
