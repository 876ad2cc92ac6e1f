package entity

// Payment records money received for a shipment. It is addressed by PaymentID rather than RecID.
type Payment struct {
	RecID      int64  `json:"rec_id"`
	PaymentID  string `json:"Payment_ID"`
	CustomerID int64  `json:"C_ID"`
	ShipmentID int64  `json:"SH_ID"`
	Amount     int64  `json:"AMOUNT"`
	Status     string `json:"Payment_Status"`
	Mode       string `json:"Payment_Mode"`
	Date       Date   `json:"Payment_Date"`
}

// PaymentDetail expands the customer and the shipment of a payment.
type PaymentDetail struct {
	Payment
	Customer *Customer       `json:"C_ID"`
	Shipment *ShipmentDetail `json:"SH_ID"`
}
