package postgres

import (
	"context"

	"logistics/internal/domain/entity"
	"logistics/internal/domain/repository"
	"logistics/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// viewRepository implements the repository.ViewRepository interface.
type viewRepository struct {
	db *gorm.DB
}

// NewViewRepository is the constructor for viewRepository.
func NewViewRepository(db *gorm.DB) repository.ViewRepository {
	return &viewRepository{db: db}
}

// CustomerWithShipments loads the customer, then its shipments in one query.
func (repo *viewRepository) CustomerWithShipments(ctx context.Context, customerRecID int64) (*entity.CustomerShipments, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Where(customerRecIDCol.Eq(customerRecID)).
		Take(&customerM).Error; err != nil {
		return nil, translateError(err, "failed to find customer")
	}

	var shipmentModels []*model.ShipmentModel
	if err := repo.db.WithContext(ctx).
		Where(shipmentCustomerIDCol.Eq(customerRecID)).
		Order("rec_id ASC").
		Find(&shipmentModels).Error; err != nil {
		return nil, translateError(err, "failed to find customer shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return &entity.CustomerShipments{
		Customer:  *toCustomerDomain(&customerM),
		Shipments: shipments,
	}, nil
}

func (repo *viewRepository) ManagementWithStatus(ctx context.Context, recID int64) (*entity.ManagementWithStatus, error) {
	var managementM model.ManagementModel
	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Where(managementRecIDCol.Eq(recID)).
		Take(&managementM).Error; err != nil {
		return nil, translateError(err, "failed to find employee shipment assignment")
	}

	return &entity.ManagementWithStatus{
		EmployeeID: managementM.EmployeeID,
		ShipmentID: managementM.ShipmentID,
		Status:     toStatusDomain(managementM.Status),
	}, nil
}

func (repo *viewRepository) ShipmentWithCustomer(ctx context.Context, shipmentRecID int64) (*entity.ShipmentWithCustomer, error) {
	var shipmentM model.ShipmentModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Where(shipmentRecIDCol.Eq(shipmentRecID)).
		Take(&shipmentM).Error; err != nil {
		return nil, translateError(err, "failed to find shipment")
	}

	return &entity.ShipmentWithCustomer{
		Shipment: *toShipmentDomain(&shipmentM),
		Customer: toCustomerDomain(shipmentM.Customer),
	}, nil
}

// ShipmentsByStatus filters shipments on an existential match across their
// assignments, then attaches the status of each shipment's first assignment.
// The attached status may differ from currentStatus when an earlier
// assignment carries another state.
func (repo *viewRepository) ShipmentsByStatus(
	ctx context.Context,
	currentStatus string,
	query repository.ListQuery,
) ([]*entity.ShipmentWithStatus, int64, error) {
	var total int64
	if err := repo.shipmentsWithStatus(ctx, currentStatus).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "failed to count shipments by status")
	}

	tx := repo.shipmentsWithStatus(ctx, currentStatus).Order("rec_id ASC")
	if query.PageSize > 0 {
		tx = tx.Offset(query.Offset()).Limit(query.PageSize)
	}

	var shipmentModels []*model.ShipmentModel
	if err := tx.Find(&shipmentModels).Error; err != nil {
		return nil, 0, translateError(err, "failed to list shipments by status")
	}

	if len(shipmentModels) == 0 {
		return []*entity.ShipmentWithStatus{}, total, nil
	}

	shipmentIDs := make([]int64, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipmentIDs = append(shipmentIDs, shipmentM.RecID)
	}

	statuses, err := repo.firstAssignmentStatuses(ctx, shipmentIDs)
	if err != nil {
		return nil, 0, err
	}

	results := make([]*entity.ShipmentWithStatus, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		results = append(results, &entity.ShipmentWithStatus{
			Shipment: *toShipmentDomain(shipmentM),
			Status:   statuses[shipmentM.RecID],
		})
	}

	return results, total, nil
}

func (repo *viewRepository) shipmentsWithStatus(ctx context.Context, currentStatus string) *gorm.DB {
	matching := repo.db.
		Table(model.ManagementModel{}.TableName()+" AS ems").
		Select("1").
		Joins("JOIN "+model.StatusModel{}.TableName()+" AS st ON st.rec_id = ems.status_sh_id").
		Where("ems.shipment_sh_id = shipments.rec_id AND st.current_status = ?", currentStatus)

	return repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("EXISTS (?)", matching)
}

// firstAssignmentStatuses maps each shipment to the status of its lowest rec_id assignment.
func (repo *viewRepository) firstAssignmentStatuses(ctx context.Context, shipmentIDs []int64) (map[int64]*entity.Status, error) {
	firstRows := repo.db.
		Model(&model.ManagementModel{}).
		Select("MIN(rec_id)").
		Where(managementShipmentIDCol.In(shipmentIDs...)).
		Group("shipment_sh_id")

	var assignments []*model.ManagementModel
	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("rec_id IN (?)", firstRows).
		Find(&assignments).Error; err != nil {
		return nil, translateError(err, "failed to load shipment statuses")
	}

	statuses := make(map[int64]*entity.Status, len(assignments))
	for _, assignment := range assignments {
		statuses[assignment.ShipmentID] = toStatusDomain(assignment.Status)
	}

	return statuses, nil
}
