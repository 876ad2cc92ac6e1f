package model

// CustomerModel is the GORM-specific struct for the 'customers' table.
// Removing the membership removes the customer.
type CustomerModel struct {
	RecID        int64            `gorm:"column:rec_id;primaryKey;autoIncrement"`
	CID          int64            `gorm:"column:c_id;not null;uniqueIndex"`
	Name         string           `gorm:"column:c_name;type:varchar(30);not null"`
	Email        string           `gorm:"column:c_email_id;type:varchar(50);not null"`
	ContactNo    int64            `gorm:"column:c_cont_no;not null"`
	Address      string           `gorm:"column:c_addr;type:varchar(100);not null"`
	Type         string           `gorm:"column:c_type;type:varchar(30);not null"`
	MembershipID int64            `gorm:"column:m_id;not null;index"`
	Membership   *MembershipModel `gorm:"foreignKey:MembershipID;references:RecID;constraint:OnDelete:CASCADE"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
