package repository

import (
	"context"

	"logistics/internal/domain/entity"
)

// ViewRepository composes the nested read views. Each method issues a fixed
// number of queries regardless of how many rows it returns.
type ViewRepository interface {
	// CustomerWithShipments returns the customer and all of its shipments in rec_id order.
	CustomerWithShipments(ctx context.Context, customerRecID int64) (*entity.CustomerShipments, error)

	// ManagementWithStatus returns one assignment with its status expanded.
	ManagementWithStatus(ctx context.Context, recID int64) (*entity.ManagementWithStatus, error)

	// ShipmentWithCustomer returns one shipment with its customer nested.
	ShipmentWithCustomer(ctx context.Context, shipmentRecID int64) (*entity.ShipmentWithCustomer, error)

	// ShipmentsByStatus pages the shipments having at least one assignment whose
	// status is exactly currentStatus. Each row carries the status of the
	// shipment's first assignment by rec_id.
	ShipmentsByStatus(ctx context.Context, currentStatus string, query ListQuery) ([]*entity.ShipmentWithStatus, int64, error)
}
