package entity

// Membership is a customer loyalty period. Deleting it removes every customer that references it.
type Membership struct {
	RecID     int64 `json:"rec_id"`
	MID       int64 `json:"M_ID"`
	StartDate Date  `json:"Start_date"`
	EndDate   Date  `json:"End_date"`
}
