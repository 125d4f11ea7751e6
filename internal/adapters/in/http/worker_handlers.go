package http

import (
	"net/http"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

type createWorkerRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Age       int      `json:"age"`
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// CreateWorker handles POST /api/v1/workers. New workers start PENDING and
// unavailable until approved.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var req createWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roles := make([]pricing.ServiceType, 0, len(req.Roles))
	for _, raw := range req.Roles {
		role, err := pricing.ServiceTypeFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid role: "+err.Error())
		}
		roles = append(roles, role)
	}

	workerID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkerCommand(
		workerID,
		req.FirstName, req.LastName,
		req.Age,
		req.Street, req.City, req.State, req.Zip,
		req.Phone, req.Email,
		roles,
	)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	if err := s.createWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: workerID.String()})
}

// ApproveWorker handles POST /api/v1/workers/:workerId/approve.
func (s *Server) ApproveWorker(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return badRequest(ctx, "Invalid workerId: "+err.Error())
	}

	cmd, err := commands.NewApproveWorkerCommand(workerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	if err := s.approveWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableWorkers handles GET /api/v1/workers/available/:role, listing
// approved, available workers qualified for the role.
func (s *Server) GetAvailableWorkers(ctx echo.Context) error {
	role, err := pricing.ServiceTypeFromString(ctx.Param("role"))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	query, err := queries.NewGetAvailableWorkersByRoleQuery(role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	workers, err := s.availableWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workers)
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetWorkerAvailability handles PUT /api/v1/workers/:workerId/availability.
func (s *Server) SetWorkerAvailability(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return badRequest(ctx, "Invalid workerId: "+err.Error())
	}

	var req setAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetWorkerAvailabilityCommand(workerID, req.Available)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	if err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
