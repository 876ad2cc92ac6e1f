package postgres

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/config"
	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory SQLite database with foreign keys enforced and the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{}),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

// storeFixtures holds every repository bound to one test database.
type storeFixtures struct {
	db          *gorm.DB
	employees   repository.EmployeeRepository
	memberships repository.MembershipRepository
	customers   repository.CustomerRepository
	shipments   repository.ShipmentRepository
	payments    repository.PaymentRepository
	statuses    repository.StatusRepository
	managements repository.ManagementRepository
	views       repository.ViewRepository
}

func createTestStores(t *testing.T) storeFixtures {
	db := newTestDB(t)

	return storeFixtures{
		db:          db,
		employees:   NewEmployeeRepository(db),
		memberships: NewMembershipRepository(db),
		customers:   NewCustomerRepository(db),
		shipments:   NewShipmentRepository(db),
		payments:    NewPaymentRepository(db),
		statuses:    NewStatusRepository(db),
		managements: NewManagementRepository(db),
		views:       NewViewRepository(db),
	}
}

func (fx storeFixtures) membership(t *testing.T, mID int64) *entity.Membership {
	t.Helper()

	m, err := fx.memberships.Create(context.Background(), &entity.Membership{
		MID:       mID,
		StartDate: entity.NewDate(2024, time.January, 1),
	})
	require.NoError(t, err)

	return m
}

func (fx storeFixtures) customer(t *testing.T, cID int64, name string, membershipID int64) *entity.Customer {
	t.Helper()

	c, err := fx.customers.Create(context.Background(), &entity.Customer{
		CID:          cID,
		Name:         name,
		Email:        "customer@example.com",
		ContactNo:    5550100,
		Address:      "1 Harbour Road",
		Type:         "RETAIL",
		MembershipID: membershipID,
	})
	require.NoError(t, err)

	return c
}

func (fx storeFixtures) shipment(t *testing.T, shID int64, customerID int64, charges int64) *entity.ShipmentDetail {
	t.Helper()

	s, err := fx.shipments.Create(context.Background(), &entity.Shipment{
		SHID:               shID,
		CustomerID:         customerID,
		Content:            "Books",
		Domain:             "DOMESTIC",
		ServiceType:        "EXPRESS",
		Weight:             "2.5",
		Charges:            charges,
		SourceAddress:      "Warehouse 4",
		DestinationAddress: "12 Elm Street",
	})
	require.NoError(t, err)

	return s
}

func (fx storeFixtures) employee(t *testing.T, eID int64) *entity.Employee {
	t.Helper()

	e, err := fx.employees.Create(context.Background(), &entity.Employee{
		EID:         eID,
		Name:        "Dana",
		Branch:      "North",
		Designation: "Courier",
		Address:     "3 Depot Lane",
		ContactNo:   5550199,
	})
	require.NoError(t, err)

	return e
}

func (fx storeFixtures) status(t *testing.T, shID int64, current string) *entity.Status {
	t.Helper()

	s, err := fx.statuses.Create(context.Background(), &entity.Status{
		SHID:          shID,
		CurrentStatus: current,
		SentDate:      entity.NewDate(2024, time.February, 1),
	})
	require.NoError(t, err)

	return s
}

func (fx storeFixtures) assign(t *testing.T, employeeID, shipmentID, statusID int64) *entity.ManagementDetail {
	t.Helper()

	m, err := fx.managements.Create(context.Background(), &entity.Management{
		EmployeeID: employeeID,
		ShipmentID: shipmentID,
		StatusID:   statusID,
	})
	require.NoError(t, err)

	return m
}
