package entity

import "time"

// Supplier is a reference entity for raw-material vendors.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Supplies  string // what they supply, free text
	CreatedAt time.Time
}
