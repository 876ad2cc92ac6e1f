package postgres

import (
	"time"

	"logistics/internal/domain/entity"
	"logistics/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// --- Date Mappers ---

func toDate(d *datatypes.Date) entity.Date {
	if d == nil {
		return entity.Date{}
	}

	t := time.Time(*d)

	return entity.NewDate(t.Year(), t.Month(), t.Day())
}

func fromDate(d entity.Date) *datatypes.Date {
	if !d.Valid {
		return nil
	}

	value := datatypes.Date(d.Time)

	return &value
}

// --- Employee Mappers ---

func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		RecID:       data.RecID,
		EID:         data.EID,
		Name:        data.Name,
		Branch:      data.Branch,
		Designation: data.Designation,
		Address:     data.Address,
		ContactNo:   data.ContactNo,
	}
}

func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		RecID:       data.RecID,
		EID:         data.EID,
		Name:        data.Name,
		Branch:      data.Branch,
		Designation: data.Designation,
		Address:     data.Address,
		ContactNo:   data.ContactNo,
	}
}

// --- Membership Mappers ---

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		RecID:     data.RecID,
		MID:       data.MID,
		StartDate: toDate(data.StartDate),
		EndDate:   toDate(data.EndDate),
	}
}

func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	return &model.MembershipModel{
		RecID:     data.RecID,
		MID:       data.MID,
		StartDate: fromDate(data.StartDate),
		EndDate:   fromDate(data.EndDate),
	}
}

// --- Customer Mappers ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		RecID:        data.RecID,
		CID:          data.CID,
		Name:         data.Name,
		Email:        data.Email,
		ContactNo:    data.ContactNo,
		Address:      data.Address,
		Type:         data.Type,
		MembershipID: data.MembershipID,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		RecID:        data.RecID,
		CID:          data.CID,
		Name:         data.Name,
		Email:        data.Email,
		ContactNo:    data.ContactNo,
		Address:      data.Address,
		Type:         data.Type,
		MembershipID: data.MembershipID,
	}
}

// --- Shipment Mappers ---

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		RecID:              data.RecID,
		SHID:               data.SHID,
		CustomerID:         data.CustomerID,
		Content:            data.Content,
		Domain:             data.Domain,
		ServiceType:        data.ServiceType,
		Weight:             data.Weight,
		Charges:            data.Charges,
		SourceAddress:      data.SourceAddress,
		DestinationAddress: data.DestinationAddress,
	}
}

func toShipmentDetail(data *model.ShipmentModel) *entity.ShipmentDetail {
	if data == nil {
		return nil
	}

	return &entity.ShipmentDetail{
		Shipment: *toShipmentDomain(data),
		Customer: toCustomerDomain(data.Customer),
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	return &model.ShipmentModel{
		RecID:              data.RecID,
		SHID:               data.SHID,
		CustomerID:         data.CustomerID,
		Content:            data.Content,
		Domain:             data.Domain,
		ServiceType:        data.ServiceType,
		Weight:             data.Weight,
		Charges:            data.Charges,
		SourceAddress:      data.SourceAddress,
		DestinationAddress: data.DestinationAddress,
	}
}

// --- Payment Mappers ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		RecID:      data.RecID,
		PaymentID:  data.PaymentID,
		CustomerID: data.CustomerID,
		ShipmentID: data.ShipmentID,
		Amount:     data.Amount,
		Status:     data.Status,
		Mode:       data.Mode,
		Date:       toDate(data.Date),
	}
}

func toPaymentDetail(data *model.PaymentModel) *entity.PaymentDetail {
	if data == nil {
		return nil
	}

	return &entity.PaymentDetail{
		Payment:  *toPaymentDomain(data),
		Customer: toCustomerDomain(data.Customer),
		Shipment: toShipmentDetail(data.Shipment),
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		RecID:      data.RecID,
		PaymentID:  data.PaymentID,
		CustomerID: data.CustomerID,
		ShipmentID: data.ShipmentID,
		Amount:     data.Amount,
		Status:     data.Status,
		Mode:       data.Mode,
		Date:       fromDate(data.Date),
	}
}

// --- Status Mappers ---

func toStatusDomain(data *model.StatusModel) *entity.Status {
	if data == nil {
		return nil
	}

	return &entity.Status{
		RecID:         data.RecID,
		SHID:          data.ShipmentSHID,
		CurrentStatus: data.CurrentStatus,
		SentDate:      toDate(data.SentDate),
		DeliveryDate:  toDate(data.DeliveryDate),
	}
}

func fromStatusDomain(data *entity.Status) *model.StatusModel {
	return &model.StatusModel{
		RecID:         data.RecID,
		ShipmentSHID:  data.SHID,
		CurrentStatus: data.CurrentStatus,
		SentDate:      fromDate(data.SentDate),
		DeliveryDate:  fromDate(data.DeliveryDate),
	}
}

// --- Management Mappers ---

func toManagementDomain(data *model.ManagementModel) *entity.Management {
	if data == nil {
		return nil
	}

	return &entity.Management{
		RecID:      data.RecID,
		EmployeeID: data.EmployeeID,
		ShipmentID: data.ShipmentID,
		StatusID:   data.StatusID,
	}
}

func toManagementDetail(data *model.ManagementModel) *entity.ManagementDetail {
	if data == nil {
		return nil
	}

	return &entity.ManagementDetail{
		Management: *toManagementDomain(data),
		Employee:   toEmployeeDomain(data.Employee),
		Shipment:   toShipmentDetail(data.Shipment),
		Status:     toStatusDomain(data.Status),
	}
}

func fromManagementDomain(data *entity.Management) *model.ManagementModel {
	return &model.ManagementModel{
		RecID:      data.RecID,
		EmployeeID: data.EmployeeID,
		ShipmentID: data.ShipmentID,
		StatusID:   data.StatusID,
	}
}
