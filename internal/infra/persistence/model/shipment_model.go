package model

// ShipmentModel is the GORM-specific struct for the 'shipments' table.
type ShipmentModel struct {
	RecID              int64          `gorm:"column:rec_id;primaryKey;autoIncrement"`
	SHID               int64          `gorm:"column:sh_id;not null;uniqueIndex"`
	CustomerID         int64          `gorm:"column:c_id;not null;index"`
	Customer           *CustomerModel `gorm:"foreignKey:CustomerID;references:RecID;constraint:OnDelete:CASCADE"`
	Content            string         `gorm:"column:sh_content;type:varchar(40);not null"`
	Domain             string         `gorm:"column:sh_domain;type:varchar(15);not null"`
	ServiceType        string         `gorm:"column:ser_type;type:varchar(15);not null"`
	Weight             string         `gorm:"column:sh_weight;type:varchar(10);not null"`
	Charges            int64          `gorm:"column:sh_charges;not null"`
	SourceAddress      string         `gorm:"column:sr_addr;type:varchar(100);not null"`
	DestinationAddress string         `gorm:"column:ds_addr;type:varchar(100);not null"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
