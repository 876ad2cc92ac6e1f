package postgres

import (
	"context"
	"testing"
	"time"

	"logistics/internal/domain/entity"
	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/domain/repository"
	"logistics/internal/errors"
	"logistics/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTable_CreateAndFind(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	membership := fx.membership(t, 10)
	assert.NotZero(t, membership.RecID)
	assert.Equal(t, entity.NewDate(2024, time.January, 1), membership.StartDate)
	assert.False(t, membership.EndDate.Valid)

	customer := fx.customer(t, 100, "Jane Doe", membership.RecID)
	shipment := fx.shipment(t, 1000, customer.RecID, 250)

	found, err := fx.shipments.FindByID(ctx, shipment.RecID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), found.SHID)
	require.NotNil(t, found.Customer)
	assert.Equal(t, "Jane Doe", found.Customer.Name)

	record, err := fx.shipments.FindRecord(ctx, shipment.RecID)
	require.NoError(t, err)
	assert.Equal(t, customer.RecID, record.CustomerID)
}

func TestRecordTable_DuplicateBusinessIDConflicts(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	fx.employee(t, 7)

	_, err := fx.employees.Create(ctx, &entity.Employee{EID: 7, Name: "Other", Branch: "South", Designation: "Clerk", Address: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	_, total, err := fx.employees.List(ctx, repository.ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRecordTable_MissingParentIsReferentialIntegrity(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	_, err := fx.customers.Create(ctx, &entity.Customer{CID: 1, Name: "Orphan", MembershipID: 999})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReferentialIntegrity))

	// A status may only be recorded for a stored shipment.
	_, err = fx.statuses.Create(ctx, &entity.Status{SHID: 4242, CurrentStatus: entity.StatusDelivered})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReferentialIntegrity))
}

func TestRecordTable_UpdateAndDeleteMissingRow(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	_, err := fx.employees.Update(ctx, 404, &entity.Employee{EID: 1, Name: "Ghost"})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	err = fx.employees.Delete(ctx, 404)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = fx.employees.FindByID(ctx, 404)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRecordTable_UpdateOverwritesFields(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	employee := fx.employee(t, 1)

	changed := *employee
	changed.Branch = "East"
	changed.ContactNo = 0

	updated, err := fx.employees.Update(ctx, employee.RecID, &changed)
	require.NoError(t, err)
	assert.Equal(t, employee.RecID, updated.RecID)
	assert.Equal(t, "East", updated.Branch)
	assert.Zero(t, updated.ContactNo)
}

func TestRecordTable_CascadeDeleteFromMembership(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	membership := fx.membership(t, 1)
	customer := fx.customer(t, 1, "Cascade", membership.RecID)
	shipment := fx.shipment(t, 1, customer.RecID, 10)
	status := fx.status(t, shipment.SHID, entity.StatusNotDelivered)
	employee := fx.employee(t, 1)
	assignment := fx.assign(t, employee.RecID, shipment.RecID, status.RecID)

	payment, err := fx.payments.Create(ctx, &entity.Payment{
		CustomerID: customer.RecID,
		ShipmentID: shipment.RecID,
		Amount:     10,
		Status:     "PAID",
		Mode:       "CARD",
	})
	require.NoError(t, err)

	require.NoError(t, fx.memberships.Delete(ctx, membership.RecID))

	_, err = fx.customers.FindByID(ctx, customer.RecID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = fx.shipments.FindByID(ctx, shipment.RecID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = fx.payments.FindByID(ctx, payment.RecID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = fx.managements.FindByID(ctx, assignment.RecID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = fx.statuses.FindByID(ctx, status.RecID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	// The employee does not depend on the membership.
	_, err = fx.employees.FindByID(ctx, employee.RecID)
	assert.NoError(t, err)
}

func TestRecordTable_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	membership := fx.membership(t, 1)
	fx.customer(t, 1, "John Doe", membership.RecID)
	fx.customer(t, 2, "jane doe", membership.RecID)
	fx.customer(t, 3, "Richard Roe", membership.RecID)
	fx.customer(t, 4, "100%_real", membership.RecID)

	customers, total, err := fx.customers.List(ctx, repository.ListQuery{Page: 1, PageSize: 10, Search: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, customers, 2)
	assert.Equal(t, "John Doe", customers[0].Name)
	assert.Equal(t, "jane doe", customers[1].Name)

	customers, _, err = fx.customers.List(ctx, repository.ListQuery{Page: 1, PageSize: 10, Search: "%_"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "100%_real", customers[0].Name)
}

func TestRecordTable_OrderingAndPaging(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	membership := fx.membership(t, 1)
	customer := fx.customer(t, 1, "Shipper", membership.RecID)
	fx.shipment(t, 1, customer.RecID, 300)
	fx.shipment(t, 2, customer.RecID, 100)
	fx.shipment(t, 3, customer.RecID, 200)

	charges := func(items []*entity.ShipmentDetail) []int64 {
		out := make([]int64, 0, len(items))
		for _, item := range items {
			out = append(out, item.Charges)
		}

		return out
	}

	asc, _, err := fx.shipments.List(ctx, repository.ListQuery{Page: 1, PageSize: 10, Ordering: repository.OrderByChargesAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200, 300}, charges(asc))

	desc, _, err := fx.shipments.List(ctx, repository.ListQuery{Page: 1, PageSize: 10, Ordering: repository.OrderByChargesDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{300, 200, 100}, charges(desc))

	unknown, _, err := fx.shipments.List(ctx, repository.ListQuery{Page: 1, PageSize: 10, Ordering: "SH_WEIGHT"})
	require.NoError(t, err)
	assert.Equal(t, []int64{300, 100, 200}, charges(unknown))

	page, total, err := fx.shipments.List(ctx, repository.ListQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []int64{200}, charges(page))
	require.NotNil(t, page[0].Customer)
}

func TestPaymentRepository_GeneratesAndResolvesPaymentID(t *testing.T) {
	fx := createTestStores(t)
	ctx := context.Background()

	membership := fx.membership(t, 1)
	customer := fx.customer(t, 1, "Payer", membership.RecID)
	shipment := fx.shipment(t, 1, customer.RecID, 50)

	payment, err := fx.payments.Create(ctx, &entity.Payment{
		CustomerID: customer.RecID,
		ShipmentID: shipment.RecID,
		Amount:     50,
		Status:     "PAID",
		Mode:       "UPI",
		Date:       entity.NewDate(2024, time.May, 2),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.PaymentID)
	require.NotNil(t, payment.Shipment)
	require.NotNil(t, payment.Shipment.Customer)
	assert.Equal(t, "Payer", payment.Shipment.Customer.Name)

	recID, err := fx.payments.FindRecIDByPaymentID(ctx, payment.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, payment.RecID, recID)

	_, err = fx.payments.FindRecIDByPaymentID(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = fx.payments.Create(ctx, &entity.Payment{
		PaymentID:  payment.PaymentID,
		CustomerID: customer.RecID,
		ShipmentID: shipment.RecID,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%doe%", containsPattern("Doe"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_OFF"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestMigrate_CreatesEveryTable(t *testing.T) {
	db := newTestDB(t)

	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}
