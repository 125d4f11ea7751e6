package http

import (
	"net/http"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (r addressRequest) toData() commands.AddressData {
	return commands.AddressData{
		Street: r.Street,
		City:   r.City,
		State:  r.State,
		Zip:    r.Zip,
	}
}

type createCustomerRequest struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Addresses []addressRequest `json:"addresses,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req createCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addresses := make([]commands.AddressData, 0, len(req.Addresses))
	for _, address := range req.Addresses {
		addresses = append(addresses, address.toData())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, req.FirstName, req.LastName, req.Email, req.Phone, addresses)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: customerID.String()})
}

// AddAddress handles POST /api/v1/customers/:customerId/addresses.
func (s *Server) AddAddress(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}

	var req addressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewAddAddressCommand(addressID, customerID, req.toData())
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if err := s.addAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: addressID.String()})
}

// RemoveAddress handles DELETE /api/v1/customers/:customerId/addresses/:addressId.
func (s *Server) RemoveAddress(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(ctx.Param("addressId"))
	if err != nil {
		return badRequest(ctx, "Invalid addressId: "+err.Error())
	}

	cmd, err := commands.NewRemoveAddressCommand(customerID, addressID)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if err := s.removeAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
