package usecase

import (
	"context"

	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"
)

// ViewUsecase serves the nested read views.
type ViewUsecase interface {
	CustomerShipments(ctx context.Context, customerRecID int64) (*entity.CustomerShipments, error)
	ManagementStatus(ctx context.Context, recID int64) (*entity.ManagementWithStatus, error)
	ShipmentCustomer(ctx context.Context, shipmentRecID int64) (*entity.ShipmentWithCustomer, error)

	// DeliveredShipments pages shipments with at least one DELIVERED assignment.
	DeliveredShipments(ctx context.Context, query repository.ListQuery) (*Page[entity.ShipmentWithStatus], error)

	// NotDeliveredShipments pages shipments with at least one NOT DELIVERED assignment.
	NotDeliveredShipments(ctx context.Context, query repository.ListQuery) (*Page[entity.ShipmentWithStatus], error)
}
