package entity

// Delivery states the delivered and not-delivered listings filter on.
const (
	StatusDelivered    = "DELIVERED"
	StatusNotDelivered = "NOT DELIVERED"
)

// Status is the tracking state of one shipment, keyed by the shipment's SH_ID.
type Status struct {
	RecID         int64  `json:"rec_id"`
	SHID          int64  `json:"SH_ID"`
	CurrentStatus string `json:"Current_Status"`
	SentDate      Date   `json:"Sent_date"`
	DeliveryDate  Date   `json:"Delivery_date"`
}
