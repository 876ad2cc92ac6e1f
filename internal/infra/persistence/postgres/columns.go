package postgres

import (
	"logistics/internal/infra/persistence/model"

	"gorm.io/gen/field"
)

// Typed columns for lookups outside the generic record tables.
var (
	customerRecIDCol = field.NewInt64(model.CustomerModel{}.TableName(), "rec_id")

	shipmentRecIDCol      = field.NewInt64(model.ShipmentModel{}.TableName(), "rec_id")
	shipmentCustomerIDCol = field.NewInt64(model.ShipmentModel{}.TableName(), "c_id")

	paymentIDCol = field.NewString(model.PaymentModel{}.TableName(), "payment_id")

	managementRecIDCol      = field.NewInt64(model.ManagementModel{}.TableName(), "rec_id")
	managementShipmentIDCol = field.NewInt64(model.ManagementModel{}.TableName(), "shipment_sh_id")
)
