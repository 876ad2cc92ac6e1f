package entity

// Shipment is a consignment sent on behalf of a customer.
type Shipment struct {
	RecID              int64  `json:"rec_id"`
	SHID               int64  `json:"SH_ID"`
	CustomerID         int64  `json:"C_ID"` // rec_id of the owning Customer.
	Content            string `json:"SH_CONTENT"`
	Domain             string `json:"SH_DOMAIN"`
	ServiceType        string `json:"SER_TYPE"`
	Weight             string `json:"SH_WEIGHT"`
	Charges            int64  `json:"SH_CHARGES"`
	SourceAddress      string `json:"SR_ADDR"`
	DestinationAddress string `json:"DS_ADDR"`
}

// ShipmentDetail is a shipment with its customer expanded in place of the reference.
type ShipmentDetail struct {
	Shipment
	Customer *Customer `json:"C_ID"`
}
