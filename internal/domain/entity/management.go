package entity

// Management assigns an employee to a shipment together with the status it is tracked under.
type Management struct {
	RecID      int64 `json:"rec_id"`
	EmployeeID int64 `json:"Employee_E_ID"`
	ShipmentID int64 `json:"Shipment_Sh_ID"`
	StatusID   int64 `json:"Status_Sh_ID"`
}

// ManagementDetail expands every reference of an assignment.
type ManagementDetail struct {
	Management
	Employee *Employee       `json:"Employee_E_ID"`
	Shipment *ShipmentDetail `json:"Shipment_Sh_ID"`
	Status   *Status         `json:"Status_Sh_ID"`
}
