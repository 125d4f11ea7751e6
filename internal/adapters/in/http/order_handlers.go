package http

import (
	"net/http"
	"time"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type createOrderRequest struct {
	CustomerID      string `json:"customerId"`
	AddressID       string `json:"addressId"`
	PricingOptionID string `json:"pricingOptionId"`
	ServiceType     string `json:"serviceType"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - books a new service order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid addressId: "+err.Error())
	}
	pricingOptionID, err := kernel.UUIDFromString(req.PricingOptionID)
	if err != nil {
		return badRequest(ctx, "Invalid pricingOptionId: "+err.Error())
	}
	serviceType, err := pricing.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid serviceType: "+err.Error())
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, addressID, pricingOptionID, serviceType, date, req.TimeSlot)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// GetOrderByID handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order query: "+err.Error())
	}

	response, err := s.orderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=....
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid order query: "+err.Error())
	}

	orders, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrdersByCustomerID handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetOrdersByCustomerID(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}

	query, err := queries.NewGetOrdersByCustomerIDQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid order query: "+err.Error())
	}

	orders, err := s.ordersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrdersByWorkerID handles GET /api/v1/workers/:workerId/orders.
func (s *Server) GetOrdersByWorkerID(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return badRequest(ctx, "Invalid workerId: "+err.Error())
	}

	query, err := queries.NewGetOrdersByWorkerIDQuery(workerID)
	if err != nil {
		return badRequest(ctx, "Invalid order query: "+err.Error())
	}

	orders, err := s.ordersByWorkerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status   string  `json:"status"`
	WorkerID *string `json:"workerId,omitempty"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId: "+err.Error())
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	var workerID *kernel.UUID
	if req.WorkerID != nil {
		id, err := kernel.UUIDFromString(*req.WorkerID)
		if err != nil {
			return badRequest(ctx, "Invalid workerId: "+err.Error())
		}
		workerID = &id
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, workerID)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addProofRequest struct {
	ProofRef string `json:"proofRef"`
}

// AddProofToOrder handles POST /api/v1/orders/:orderId/proof.
func (s *Server) AddProofToOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid orderId: "+err.Error())
	}

	var req addProofRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProofCommand(orderID, req.ProofRef)
	if err != nil {
		return badRequest(ctx, "Invalid proof data: "+err.Error())
	}

	if err := s.addProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
