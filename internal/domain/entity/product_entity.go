package entity

import "time"

// Product is a finished good derived from a material, owned by a
// manufacturer. ExternalTxHash is the opaque correlation string supplied
// by the purchase workflow's finalize call; it is stored verbatim and
// never validated against any ledger.
type Product struct {
	ID                  string
	MaterialID          string
	Name                string
	Quantity            int
	Price               float64
	ImageURL            string
	Description         string
	ManufacturerID      string
	ManufacturerName    string
	ManufacturerCompany string
	ExternalTxHash      string
	CreatedAt           time.Time
}
