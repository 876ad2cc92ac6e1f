package entity

// Customer places shipments and pays for them.
type Customer struct {
	RecID        int64  `json:"rec_id"`
	CID          int64  `json:"C_ID"`
	Name         string `json:"C_NAME"`
	Email        string `json:"C_EMAIL_ID"`
	ContactNo    int64  `json:"C_CONT_NO"`
	Address      string `json:"C_ADDR"`
	Type         string `json:"C_TYPE"`
	MembershipID int64  `json:"M_ID"` // rec_id of the owning Membership.
}
