package model

import "gorm.io/datatypes"

// MembershipModel is the GORM-specific struct for the 'memberships' table.
type MembershipModel struct {
	RecID     int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	MID       int64           `gorm:"column:m_id;not null;uniqueIndex"`
	StartDate *datatypes.Date `gorm:"column:start_date"`
	EndDate   *datatypes.Date `gorm:"column:end_date"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}
