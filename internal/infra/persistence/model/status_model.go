package model

import "gorm.io/datatypes"

// StatusModel is the GORM-specific struct for the 'statuses' table.
// sh_id references shipments.sh_id, so a status exists only for a stored shipment.
type StatusModel struct {
	RecID         int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	ShipmentSHID  int64           `gorm:"column:sh_id;not null;uniqueIndex"`
	Shipment      *ShipmentModel  `gorm:"foreignKey:ShipmentSHID;references:SHID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CurrentStatus string          `gorm:"column:current_status;type:varchar(15);not null;index"`
	SentDate      *datatypes.Date `gorm:"column:sent_date"`
	DeliveryDate  *datatypes.Date `gorm:"column:delivery_date"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
