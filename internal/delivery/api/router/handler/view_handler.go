package handler

import (
	"context"
	"net/http"

	"logistics/config"
	"logistics/internal/delivery/api/response"
	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"
	"logistics/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ViewHandlerParams holds dependencies for ViewHandler, injected by Fx.
type ViewHandlerParams struct {
	fx.In

	Config *config.Config
	ViewUC usecase.ViewUsecase
}

// ViewHandler serves the nested read views.
type ViewHandler struct {
	viewUC     usecase.ViewUsecase
	pagination config.PaginationConfig
	recID      func(c echo.Context) (int64, error)
}

// NewViewHandler is the constructor for ViewHandler.
func NewViewHandler(params ViewHandlerParams) *ViewHandler {
	return &ViewHandler{
		viewUC:     params.ViewUC,
		pagination: params.Config.Pagination,
		recID:      pathRecID("id"),
	}
}

// CustomerShipments handles GET /customers/:id/shipments.
func (h *ViewHandler) CustomerShipments(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	view, err := h.viewUC.CustomerShipments(c.Request().Context(), recID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// ManagementStatus handles GET /employeemanagesshipments/:id/status.
func (h *ViewHandler) ManagementStatus(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	view, err := h.viewUC.ManagementStatus(c.Request().Context(), recID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// ShipmentCustomer handles GET /shipments/:id/customer.
func (h *ViewHandler) ShipmentCustomer(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	view, err := h.viewUC.ShipmentCustomer(c.Request().Context(), recID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// DeliveredShipments handles GET /shipments/delivered.
func (h *ViewHandler) DeliveredShipments(c echo.Context) error {
	return h.shipmentsByStatus(c, h.viewUC.DeliveredShipments)
}

// NotDeliveredShipments handles GET /shipments/not-delivered.
func (h *ViewHandler) NotDeliveredShipments(c echo.Context) error {
	return h.shipmentsByStatus(c, h.viewUC.NotDeliveredShipments)
}

type shipmentsByStatusFunc func(ctx context.Context, query repository.ListQuery) (*usecase.Page[entity.ShipmentWithStatus], error)

func (h *ViewHandler) shipmentsByStatus(c echo.Context, list shipmentsByStatusFunc) error {
	query, err := listQuery(c, h.pagination)
	if err != nil {
		return err
	}

	page, err := list(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Page(c, page.Items, page.Total, page.Page, page.HasNext(), page.HasPrevious())
}
