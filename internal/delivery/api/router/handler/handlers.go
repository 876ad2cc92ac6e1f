package handler

import (
	"logistics/config"
	"logistics/internal/domain/entity"
	"logistics/internal/usecase"

	"go.uber.org/fx"
)

// Handlers groups the record handlers mounted under /api.
type Handlers struct {
	Employees   *ResourceHandler[entity.Employee, entity.Employee]
	Memberships *ResourceHandler[entity.Membership, entity.Membership]
	Customers   *ResourceHandler[entity.Customer, entity.Customer]
	Shipments   *ResourceHandler[entity.Shipment, entity.ShipmentDetail]
	Payments    *ResourceHandler[entity.Payment, entity.PaymentDetail]
	Statuses    *ResourceHandler[entity.Status, entity.Status]
	Management  *ResourceHandler[entity.Management, entity.ManagementDetail]
}

// HandlersParams holds dependencies for Handlers, injected by Fx.
type HandlersParams struct {
	fx.In

	Config       *config.Config
	EmployeeUC   usecase.EmployeeUsecase
	MembershipUC usecase.MembershipUsecase
	CustomerUC   usecase.CustomerUsecase
	ShipmentUC   usecase.ShipmentUsecase
	PaymentUC    usecase.PaymentUsecase
	StatusUC     usecase.StatusUsecase
	ManagementUC usecase.ManagementUsecase
}

// NewHandlers is the constructor for Handlers.
func NewHandlers(params HandlersParams) *Handlers {
	pagination := params.Config.Pagination

	payments := newResourceHandler[entity.Payment, entity.PaymentDetail](params.PaymentUC, func() recordRequest[entity.Payment] { return &paymentRequest{} }, pagination)
	payments.recID = resolvedRecID("payment_id", params.PaymentUC.ResolveRecID)

	return &Handlers{
		Employees:   newResourceHandler(params.EmployeeUC, func() recordRequest[entity.Employee] { return &employeeRequest{} }, pagination),
		Memberships: newResourceHandler(params.MembershipUC, func() recordRequest[entity.Membership] { return &membershipRequest{} }, pagination),
		Customers:   newResourceHandler(params.CustomerUC, func() recordRequest[entity.Customer] { return &customerRequest{} }, pagination),
		Shipments:   newResourceHandler(params.ShipmentUC, func() recordRequest[entity.Shipment] { return &shipmentRequest{} }, pagination),
		Payments:    payments,
		Statuses:    newResourceHandler(params.StatusUC, func() recordRequest[entity.Status] { return &statusRequest{} }, pagination),
		Management:  newResourceHandler(params.ManagementUC, func() recordRequest[entity.Management] { return &managementRequest{} }, pagination),
	}
}
