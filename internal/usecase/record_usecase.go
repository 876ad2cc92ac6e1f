// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"
)

// RecordUsecase defines the CRUD operations shared by every record kind.
// R is the writable record, D the read shape returned to clients.
type RecordUsecase[R any, D any] interface {
	// List returns the requested page. A page past the last one fails with ErrInvalidPage.
	List(ctx context.Context, query repository.ListQuery) (*Page[D], error)

	// Get retrieves one record by rec_id.
	Get(ctx context.Context, recID int64) (*D, error)

	// Create stores a new record.
	Create(ctx context.Context, record *R) (*D, error)

	// Update replaces the record at recID.
	Update(ctx context.Context, recID int64, record *R) (*D, error)

	// Patch loads the record at recID, lets apply change it and stores the result.
	Patch(ctx context.Context, recID int64, apply func(*R) error) (*D, error)

	// Delete removes the record at recID together with its dependents.
	Delete(ctx context.Context, recID int64) error
}

type (
	EmployeeUsecase   = RecordUsecase[entity.Employee, entity.Employee]
	MembershipUsecase = RecordUsecase[entity.Membership, entity.Membership]
	CustomerUsecase   = RecordUsecase[entity.Customer, entity.Customer]
	ShipmentUsecase   = RecordUsecase[entity.Shipment, entity.ShipmentDetail]
	StatusUsecase     = RecordUsecase[entity.Status, entity.Status]
	ManagementUsecase = RecordUsecase[entity.Management, entity.ManagementDetail]
)

// PaymentUsecase addresses payments by Payment_ID at the edge.
type PaymentUsecase interface {
	RecordUsecase[entity.Payment, entity.PaymentDetail]

	// ResolveRecID maps a Payment_ID to the payment's rec_id.
	ResolveRecID(ctx context.Context, paymentID string) (int64, error)
}
