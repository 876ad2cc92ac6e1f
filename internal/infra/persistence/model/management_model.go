package model

// ManagementModel is the GORM-specific struct for the 'employee_manages_shipments' table.
type ManagementModel struct {
	RecID      int64          `gorm:"column:rec_id;primaryKey;autoIncrement"`
	EmployeeID int64          `gorm:"column:employee_e_id;not null;index"`
	Employee   *EmployeeModel `gorm:"foreignKey:EmployeeID;references:RecID;constraint:OnDelete:CASCADE"`
	ShipmentID int64          `gorm:"column:shipment_sh_id;not null;index"`
	Shipment   *ShipmentModel `gorm:"foreignKey:ShipmentID;references:RecID;constraint:OnDelete:CASCADE"`
	StatusID   int64          `gorm:"column:status_sh_id;not null;index"`
	Status     *StatusModel   `gorm:"foreignKey:StatusID;references:RecID;constraint:OnDelete:CASCADE"`
}

func (ManagementModel) TableName() string {
	return "employee_manages_shipments"
}

// All lists every model in dependency order for migrations and code generation.
func All() []any {
	return []any{
		&MembershipModel{},
		&EmployeeModel{},
		&CustomerModel{},
		&ShipmentModel{},
		&StatusModel{},
		&PaymentModel{},
		&ManagementModel{},
	}
}
