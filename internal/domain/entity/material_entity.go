package entity

import "time"

// Material is a raw-material listing owned by a supplier.
// SupplierName and SupplierCompany are snapshots taken at creation time;
// they are not resynced when the supplier later edits their profile.
type Material struct {
	ID              string
	Name            string
	Quantity        int
	Price           float64
	ImageURL        string
	Description     string
	SupplierID      string
	SupplierName    string
	SupplierCompany string
	CreatedAt       time.Time
}
