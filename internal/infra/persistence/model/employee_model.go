// Package model holds the GORM-specific structs for the logistics tables.
package model

// EmployeeModel is the GORM-specific struct for the 'employees' table.
type EmployeeModel struct {
	RecID       int64  `gorm:"column:rec_id;primaryKey;autoIncrement"`
	EID         int64  `gorm:"column:e_id;not null;uniqueIndex"`
	Name        string `gorm:"column:e_name;type:varchar(30);not null"`
	Branch      string `gorm:"column:e_branch;type:varchar(15);not null"`
	Designation string `gorm:"column:e_designation;type:varchar(40);not null"`
	Address     string `gorm:"column:e_addr;type:varchar(100);not null"`
	ContactNo   int64  `gorm:"column:e_cont_no;not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
