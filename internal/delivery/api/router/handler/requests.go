package handler

import (
	"logistics/internal/domain/entity"
)

// recordRequest is the writable body of one record kind. Partial updates
// load the stored record first and bind the client's fields over it.
type recordRequest[R any] interface {
	Load(record *R)
	Record() *R
}

// Integer fields are pointers so "required" rejects a missing value while still accepting 0.

type employeeRequest struct {
	EID         *int64 `json:"E_ID" form:"E_ID" validate:"required"`
	Name        string `json:"E_NAME" form:"E_NAME" validate:"required,max=30"`
	Branch      string `json:"E_BRANCH" form:"E_BRANCH" validate:"required,max=15"`
	Designation string `json:"E_DESIGNATION" form:"E_DESIGNATION" validate:"required,max=40"`
	Address     string `json:"E_ADDR" form:"E_ADDR" validate:"required,max=100"`
	ContactNo   *int64 `json:"E_CONT_NO" form:"E_CONT_NO" validate:"required"`
}

func (r *employeeRequest) Load(e *entity.Employee) {
	r.EID = ref(e.EID)
	r.Name = e.Name
	r.Branch = e.Branch
	r.Designation = e.Designation
	r.Address = e.Address
	r.ContactNo = ref(e.ContactNo)
}

func (r *employeeRequest) Record() *entity.Employee {
	return &entity.Employee{
		EID:         deref(r.EID),
		Name:        r.Name,
		Branch:      r.Branch,
		Designation: r.Designation,
		Address:     r.Address,
		ContactNo:   deref(r.ContactNo),
	}
}

type membershipRequest struct {
	MID       *int64      `json:"M_ID" form:"M_ID" validate:"required"`
	StartDate entity.Date `json:"Start_date" form:"Start_date"`
	EndDate   entity.Date `json:"End_date" form:"End_date"`
}

func (r *membershipRequest) Load(m *entity.Membership) {
	r.MID = ref(m.MID)
	r.StartDate = m.StartDate
	r.EndDate = m.EndDate
}

func (r *membershipRequest) Record() *entity.Membership {
	return &entity.Membership{
		MID:       deref(r.MID),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type customerRequest struct {
	CID          *int64 `json:"C_ID" form:"C_ID" validate:"required"`
	Name         string `json:"C_NAME" form:"C_NAME" validate:"required,max=30"`
	Email        string `json:"C_EMAIL_ID" form:"C_EMAIL_ID" validate:"required,max=50"`
	ContactNo    *int64 `json:"C_CONT_NO" form:"C_CONT_NO" validate:"required"`
	Address      string `json:"C_ADDR" form:"C_ADDR" validate:"required,max=100"`
	Type         string `json:"C_TYPE" form:"C_TYPE" validate:"required,max=30"`
	MembershipID *int64 `json:"M_ID" form:"M_ID" validate:"required"`
}

func (r *customerRequest) Load(c *entity.Customer) {
	r.CID = ref(c.CID)
	r.Name = c.Name
	r.Email = c.Email
	r.ContactNo = ref(c.ContactNo)
	r.Address = c.Address
	r.Type = c.Type
	r.MembershipID = ref(c.MembershipID)
}

func (r *customerRequest) Record() *entity.Customer {
	return &entity.Customer{
		CID:          deref(r.CID),
		Name:         r.Name,
		Email:        r.Email,
		ContactNo:    deref(r.ContactNo),
		Address:      r.Address,
		Type:         r.Type,
		MembershipID: deref(r.MembershipID),
	}
}

type shipmentRequest struct {
	SHID               *int64 `json:"SH_ID" form:"SH_ID" validate:"required"`
	CustomerID         *int64 `json:"C_ID" form:"C_ID" validate:"required"`
	Content            string `json:"SH_CONTENT" form:"SH_CONTENT" validate:"required,max=40"`
	Domain             string `json:"SH_DOMAIN" form:"SH_DOMAIN" validate:"required,max=15"`
	ServiceType        string `json:"SER_TYPE" form:"SER_TYPE" validate:"required,max=15"`
	Weight             string `json:"SH_WEIGHT" form:"SH_WEIGHT" validate:"required,max=10"`
	Charges            *int64 `json:"SH_CHARGES" form:"SH_CHARGES" validate:"required"`
	SourceAddress      string `json:"SR_ADDR" form:"SR_ADDR" validate:"required,max=100"`
	DestinationAddress string `json:"DS_ADDR" form:"DS_ADDR" validate:"required,max=100"`
}

func (r *shipmentRequest) Load(s *entity.Shipment) {
	r.SHID = ref(s.SHID)
	r.CustomerID = ref(s.CustomerID)
	r.Content = s.Content
	r.Domain = s.Domain
	r.ServiceType = s.ServiceType
	r.Weight = s.Weight
	r.Charges = ref(s.Charges)
	r.SourceAddress = s.SourceAddress
	r.DestinationAddress = s.DestinationAddress
}

func (r *shipmentRequest) Record() *entity.Shipment {
	return &entity.Shipment{
		SHID:               deref(r.SHID),
		CustomerID:         deref(r.CustomerID),
		Content:            r.Content,
		Domain:             r.Domain,
		ServiceType:        r.ServiceType,
		Weight:             r.Weight,
		Charges:            deref(r.Charges),
		SourceAddress:      r.SourceAddress,
		DestinationAddress: r.DestinationAddress,
	}
}

// paymentRequest leaves Payment_ID optional; the store assigns a UUID when it is blank.
type paymentRequest struct {
	PaymentID  string      `json:"Payment_ID" form:"Payment_ID" validate:"max=40"`
	CustomerID *int64      `json:"C_ID" form:"C_ID" validate:"required"`
	ShipmentID *int64      `json:"SH_ID" form:"SH_ID" validate:"required"`
	Amount     *int64      `json:"AMOUNT" form:"AMOUNT" validate:"required"`
	Status     string      `json:"Payment_Status" form:"Payment_Status" validate:"required,max=10"`
	Mode       string      `json:"Payment_Mode" form:"Payment_Mode" validate:"required,max=25"`
	Date       entity.Date `json:"Payment_Date" form:"Payment_Date"`
}

func (r *paymentRequest) Load(p *entity.Payment) {
	r.PaymentID = p.PaymentID
	r.CustomerID = ref(p.CustomerID)
	r.ShipmentID = ref(p.ShipmentID)
	r.Amount = ref(p.Amount)
	r.Status = p.Status
	r.Mode = p.Mode
	r.Date = p.Date
}

func (r *paymentRequest) Record() *entity.Payment {
	return &entity.Payment{
		PaymentID:  r.PaymentID,
		CustomerID: deref(r.CustomerID),
		ShipmentID: deref(r.ShipmentID),
		Amount:     deref(r.Amount),
		Status:     r.Status,
		Mode:       r.Mode,
		Date:       r.Date,
	}
}

type statusRequest struct {
	SHID          *int64      `json:"SH_ID" form:"SH_ID" validate:"required"`
	CurrentStatus string      `json:"Current_Status" form:"Current_Status" validate:"required,max=15"`
	SentDate      entity.Date `json:"Sent_date" form:"Sent_date"`
	DeliveryDate  entity.Date `json:"Delivery_date" form:"Delivery_date"`
}

func (r *statusRequest) Load(s *entity.Status) {
	r.SHID = ref(s.SHID)
	r.CurrentStatus = s.CurrentStatus
	r.SentDate = s.SentDate
	r.DeliveryDate = s.DeliveryDate
}

func (r *statusRequest) Record() *entity.Status {
	return &entity.Status{
		SHID:          deref(r.SHID),
		CurrentStatus: r.CurrentStatus,
		SentDate:      r.SentDate,
		DeliveryDate:  r.DeliveryDate,
	}
}

type managementRequest struct {
	EmployeeID *int64 `json:"Employee_E_ID" form:"Employee_E_ID" validate:"required"`
	ShipmentID *int64 `json:"Shipment_Sh_ID" form:"Shipment_Sh_ID" validate:"required"`
	StatusID   *int64 `json:"Status_Sh_ID" form:"Status_Sh_ID" validate:"required"`
}

func (r *managementRequest) Load(m *entity.Management) {
	r.EmployeeID = ref(m.EmployeeID)
	r.ShipmentID = ref(m.ShipmentID)
	r.StatusID = ref(m.StatusID)
}

func (r *managementRequest) Record() *entity.Management {
	return &entity.Management{
		EmployeeID: deref(r.EmployeeID),
		ShipmentID: deref(r.ShipmentID),
		StatusID:   deref(r.StatusID),
	}
}

func ref[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
