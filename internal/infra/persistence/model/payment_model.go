package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	RecID      int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	PaymentID  string          `gorm:"column:payment_id;type:varchar(40);not null;uniqueIndex"`
	CustomerID int64           `gorm:"column:c_id;not null;index"`
	Customer   *CustomerModel  `gorm:"foreignKey:CustomerID;references:RecID;constraint:OnDelete:CASCADE"`
	ShipmentID int64           `gorm:"column:sh_id;not null;index"`
	Shipment   *ShipmentModel  `gorm:"foreignKey:ShipmentID;references:RecID;constraint:OnDelete:CASCADE"`
	Amount     int64           `gorm:"column:amount;not null"`
	Status     string          `gorm:"column:payment_status;type:varchar(10);not null"`
	Mode       string          `gorm:"column:payment_mode;type:varchar(25);not null"`
	Date       *datatypes.Date `gorm:"column:payment_date"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// BeforeCreate assigns a random Payment_ID when the caller leaves it empty.
func (p *PaymentModel) BeforeCreate(_ *gorm.DB) error {
	if p.PaymentID == "" {
		p.PaymentID = uuid.NewString()
	}

	return nil
}
