package http

import (
	"net/http"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type pricingOptionRequest struct {
	ServiceType   string   `json:"serviceType"`
	Name          string   `json:"name"`
	Subtitle      string   `json:"subtitle"`
	Price         string   `json:"price"`
	BillingPeriod string   `json:"billingPeriod"`
	Features      []string `json:"features"`
	SizeRange     string   `json:"sizeRange"`
}

// CreatePricingOption handles POST /api/v1/pricing-options.
func (s *Server) CreatePricingOption(ctx echo.Context) error {
	var req pricingOptionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceType, err := pricing.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid serviceType: "+err.Error())
	}
	billingPeriod, err := pricing.BillingPeriodFromString(req.BillingPeriod)
	if err != nil {
		return badRequest(ctx, "Invalid billingPeriod: "+err.Error())
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	pricingOptionID := kernel.NewUUID()
	cmd, err := commands.NewCreatePricingOptionCommand(
		pricingOptionID, serviceType, req.Name, req.Subtitle,
		price, billingPeriod, req.Features, req.SizeRange)
	if err != nil {
		return badRequest(ctx, "Invalid plan data: "+err.Error())
	}

	if err := s.createPricingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: pricingOptionID.String()})
}

type updatePricingOptionRequest struct {
	Name      string   `json:"name"`
	Subtitle  string   `json:"subtitle"`
	Price     string   `json:"price"`
	Features  []string `json:"features"`
	SizeRange string   `json:"sizeRange"`
}

// UpdatePricingOption handles PUT /api/v1/pricing-options/:pricingOptionId.
// Existing orders keep their snapshotted price.
func (s *Server) UpdatePricingOption(ctx echo.Context) error {
	pricingOptionID, err := kernel.UUIDFromString(ctx.Param("pricingOptionId"))
	if err != nil {
		return badRequest(ctx, "Invalid pricingOptionId: "+err.Error())
	}

	var req updatePricingOptionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewUpdatePricingOptionCommand(
		pricingOptionID, req.Name, req.Subtitle, price, req.Features, req.SizeRange)
	if err != nil {
		return badRequest(ctx, "Invalid plan data: "+err.Error())
	}

	if err := s.updatePricingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPricingOptions handles GET /api/v1/pricing-options?serviceType=&billingPeriod=.
func (s *Server) GetPricingOptions(ctx echo.Context) error {
	serviceType, err := pricing.ServiceTypeFromString(ctx.QueryParam("serviceType"))
	if err != nil {
		return badRequest(ctx, "Invalid serviceType: "+err.Error())
	}

	var billingPeriod *pricing.BillingPeriod
	if raw := ctx.QueryParam("billingPeriod"); raw != "" {
		period, err := pricing.BillingPeriodFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid billingPeriod: "+err.Error())
		}
		billingPeriod = &period
	}

	query, err := queries.NewGetPricingOptionsQuery(serviceType, billingPeriod)
	if err != nil {
		return badRequest(ctx, "Invalid plan query: "+err.Error())
	}

	plans, err := s.pricingOptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, plans)
}

// GetPricingOptionByID handles GET /api/v1/pricing-options/:pricingOptionId.
func (s *Server) GetPricingOptionByID(ctx echo.Context) error {
	pricingOptionID, err := kernel.UUIDFromString(ctx.Param("pricingOptionId"))
	if err != nil {
		return badRequest(ctx, "Invalid pricingOptionId: "+err.Error())
	}

	query, err := queries.NewGetPricingOptionByIDQuery(pricingOptionID)
	if err != nil {
		return badRequest(ctx, "Invalid plan query: "+err.Error())
	}

	plan, err := s.pricingOptionByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, plan)
}
