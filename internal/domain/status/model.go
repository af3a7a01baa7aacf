package status

// Status is a ticket workflow state. The row with the lowest ID is the
// default status assigned to new tickets.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}
