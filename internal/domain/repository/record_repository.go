// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"logistics/internal/domain/entity"
)

// Ordering values accepted by shipment listings.
const (
	OrderByChargesAsc  = "SH_CHARGES"
	OrderByChargesDesc = "-SH_CHARGES"
)

// ListQuery narrows and pages a listing. Kinds ignore filters they do not support.
type ListQuery struct {
	Page     int    // 1-based.
	PageSize int    // Rows per page.
	Search   string // Case-insensitive substring match on the kind's search column.
	Ordering string // One of the kind's ordering values. Unknown values fall back to rec_id order.
}

// Offset returns the number of rows skipped before the requested page.
func (q ListQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.PageSize
}

// RecordRepository is the storage contract shared by every record kind.
// R is the writable record, D the read shape with references expanded.
// Errors are domain errors: ErrNotFound, ErrConflict, ErrReferentialIntegrity,
// ErrUnavailable or a DatabaseExecuteError.
type RecordRepository[R any, D any] interface {
	// Create persists record and returns it as stored.
	Create(ctx context.Context, record *R) (*D, error)

	// FindByID retrieves one record with its references expanded.
	FindByID(ctx context.Context, recID int64) (*D, error)

	// FindRecord retrieves one record in its writable shape.
	FindRecord(ctx context.Context, recID int64) (*R, error)

	// List returns one page of records and the total number of matches.
	List(ctx context.Context, query ListQuery) ([]*D, int64, error)

	// Update replaces every writable field of the record at recID.
	Update(ctx context.Context, recID int64, record *R) (*D, error)

	// Delete removes the record at recID and everything that depends on it.
	Delete(ctx context.Context, recID int64) error
}

type (
	EmployeeRepository   = RecordRepository[entity.Employee, entity.Employee]
	MembershipRepository = RecordRepository[entity.Membership, entity.Membership]
	CustomerRepository   = RecordRepository[entity.Customer, entity.Customer]
	ShipmentRepository   = RecordRepository[entity.Shipment, entity.ShipmentDetail]
	StatusRepository     = RecordRepository[entity.Status, entity.Status]
	ManagementRepository = RecordRepository[entity.Management, entity.ManagementDetail]
)

// PaymentRepository adds lookup by the payment's business identifier.
type PaymentRepository interface {
	RecordRepository[entity.Payment, entity.PaymentDetail]

	// FindRecIDByPaymentID resolves a Payment_ID to the row's rec_id.
	FindRecIDByPaymentID(ctx context.Context, paymentID string) (int64, error)
}
