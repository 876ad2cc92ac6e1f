package postgres

import (
	"context"

	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"
	"logistics/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Preloaded associations of the expanded read shapes.
var (
	shipmentPreloads   = []string{"Customer"}
	paymentPreloads    = []string{"Customer", "Shipment", "Shipment.Customer"}
	managementPreloads = []string{"Employee", "Shipment", "Shipment.Customer", "Status"}
)

// NewEmployeeRepository is the constructor for the employee store.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return newRecordTable(db, tableDef[model.EmployeeModel, entity.Employee, entity.Employee]{
		kind:     "employee",
		recID:    func(m *model.EmployeeModel) int64 { return m.RecID },
		toModel:  fromEmployeeDomain,
		toRecord: toEmployeeDomain,
		toDetail: toEmployeeDomain,
	})
}

// NewMembershipRepository is the constructor for the membership store.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return newRecordTable(db, tableDef[model.MembershipModel, entity.Membership, entity.Membership]{
		kind:     "membership",
		recID:    func(m *model.MembershipModel) int64 { return m.RecID },
		toModel:  fromMembershipDomain,
		toRecord: toMembershipDomain,
		toDetail: toMembershipDomain,
	})
}

// NewCustomerRepository is the constructor for the customer store. Listings search on C_NAME.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return newRecordTable(db, tableDef[model.CustomerModel, entity.Customer, entity.Customer]{
		kind:         "customer",
		searchColumn: "c_name",
		recID:        func(m *model.CustomerModel) int64 { return m.RecID },
		toModel:      fromCustomerDomain,
		toRecord:     toCustomerDomain,
		toDetail:     toCustomerDomain,
	})
}

// NewShipmentRepository is the constructor for the shipment store. Listings order on SH_CHARGES.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return newRecordTable(db, tableDef[model.ShipmentModel, entity.Shipment, entity.ShipmentDetail]{
		kind:     "shipment",
		preloads: shipmentPreloads,
		orderings: map[string]string{
			repository.OrderByChargesAsc:  "sh_charges ASC",
			repository.OrderByChargesDesc: "sh_charges DESC",
		},
		recID:    func(m *model.ShipmentModel) int64 { return m.RecID },
		toModel:  fromShipmentDomain,
		toRecord: toShipmentDomain,
		toDetail: toShipmentDetail,
	})
}

// NewStatusRepository is the constructor for the status store.
func NewStatusRepository(db *gorm.DB) repository.StatusRepository {
	return newRecordTable(db, tableDef[model.StatusModel, entity.Status, entity.Status]{
		kind:     "status",
		recID:    func(m *model.StatusModel) int64 { return m.RecID },
		toModel:  fromStatusDomain,
		toRecord: toStatusDomain,
		toDetail: toStatusDomain,
	})
}

// NewManagementRepository is the constructor for the employee-manages-shipment store.
func NewManagementRepository(db *gorm.DB) repository.ManagementRepository {
	return newRecordTable(db, tableDef[model.ManagementModel, entity.Management, entity.ManagementDetail]{
		kind:     "employee shipment assignment",
		preloads: managementPreloads,
		recID:    func(m *model.ManagementModel) int64 { return m.RecID },
		toModel:  fromManagementDomain,
		toRecord: toManagementDomain,
		toDetail: toManagementDetail,
	})
}

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	*recordTable[model.PaymentModel, entity.Payment, entity.PaymentDetail]
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		recordTable: newRecordTable(db, tableDef[model.PaymentModel, entity.Payment, entity.PaymentDetail]{
			kind:     "payment",
			preloads: paymentPreloads,
			recID:    func(m *model.PaymentModel) int64 { return m.RecID },
			toModel:  fromPaymentDomain,
			toRecord: toPaymentDomain,
			toDetail: toPaymentDetail,
		}),
	}
}

// FindRecIDByPaymentID resolves the business identifier used by payment detail routes.
func (repo *paymentRepository) FindRecIDByPaymentID(ctx context.Context, paymentID string) (int64, error) {
	var m model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Select("rec_id").
		Where(paymentIDCol.Eq(paymentID)).
		Take(&m).Error; err != nil {
		return 0, translateError(err, "failed to find payment by Payment_ID")
	}

	return m.RecID, nil
}
