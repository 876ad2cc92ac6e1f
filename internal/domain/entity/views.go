package entity

// CustomerShipments is a customer together with every shipment it owns.
type CustomerShipments struct {
	Customer
	Shipments []*Shipment `json:"shipments"`
}

// ManagementWithStatus keeps the employee and shipment references and expands only the status.
type ManagementWithStatus struct {
	EmployeeID int64   `json:"Employee_E_ID"`
	ShipmentID int64   `json:"Shipment_Sh_ID"`
	Status     *Status `json:"Status_Sh_ID"`
}

// ShipmentWithStatus is a shipment annotated with the status of its first assignment.
type ShipmentWithStatus struct {
	Shipment
	Status *Status `json:"status"`
}

// ShipmentWithCustomer is a shipment with its customer nested under "Customer".
type ShipmentWithCustomer struct {
	Shipment
	Customer *Customer `json:"Customer"`
}
