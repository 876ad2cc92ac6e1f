// Package entity contains the records served by the logistics API and the views composed from them.
package entity

// Employee is a staff member who can be assigned to shipments.
type Employee struct {
	RecID       int64  `json:"rec_id"`
	EID         int64  `json:"E_ID"`          // Business identifier, unique.
	Name        string `json:"E_NAME"`        // Up to 30 characters.
	Branch      string `json:"E_BRANCH"`      // Up to 15 characters.
	Designation string `json:"E_DESIGNATION"` // Up to 40 characters.
	Address     string `json:"E_ADDR"`        // Up to 100 characters.
	ContactNo   int64  `json:"E_CONT_NO"`
}
