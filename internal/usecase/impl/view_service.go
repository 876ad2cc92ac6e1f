package impl

import (
	"context"

	"logistics/internal/domain/entity"
	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/domain/repository"
	"logistics/internal/errors"
	"logistics/internal/usecase"
)

type viewService struct {
	viewRepo repository.ViewRepository
}

// NewViewService is the constructor for viewService.
func NewViewService(viewRepo repository.ViewRepository) usecase.ViewUsecase {
	return &viewService{viewRepo: viewRepo}
}

func (srv *viewService) CustomerShipments(ctx context.Context, customerRecID int64) (*entity.CustomerShipments, error) {
	view, err := srv.viewRepo.CustomerWithShipments(ctx, customerRecID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load shipments of customer %d", customerRecID)
	}

	return view, nil
}

func (srv *viewService) ManagementStatus(ctx context.Context, recID int64) (*entity.ManagementWithStatus, error) {
	view, err := srv.viewRepo.ManagementWithStatus(ctx, recID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load status of assignment %d", recID)
	}

	return view, nil
}

func (srv *viewService) ShipmentCustomer(ctx context.Context, shipmentRecID int64) (*entity.ShipmentWithCustomer, error) {
	view, err := srv.viewRepo.ShipmentWithCustomer(ctx, shipmentRecID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load customer of shipment %d", shipmentRecID)
	}

	return view, nil
}

func (srv *viewService) DeliveredShipments(ctx context.Context, query repository.ListQuery) (*usecase.Page[entity.ShipmentWithStatus], error) {
	return srv.shipmentsByStatus(ctx, entity.StatusDelivered, query)
}

func (srv *viewService) NotDeliveredShipments(ctx context.Context, query repository.ListQuery) (*usecase.Page[entity.ShipmentWithStatus], error) {
	return srv.shipmentsByStatus(ctx, entity.StatusNotDelivered, query)
}

func (srv *viewService) shipmentsByStatus(ctx context.Context, status string, query repository.ListQuery) (*usecase.Page[entity.ShipmentWithStatus], error) {
	if query.Page < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPage, "page numbers start at 1")
	}

	items, total, err := srv.viewRepo.ShipmentsByStatus(ctx, status, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s shipments", status)
	}

	return newPage(items, total, query)
}
