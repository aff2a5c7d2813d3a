package entity

import "time"

// Product is a catalog item. Price is an integer amount of MZN, which has
// no subunit in this model. Mutated only by admins.
type Product struct {
	ID                  uint
	NamePt              string
	NameEn              string
	DescriptionPt       string
	DescriptionEn       string
	Price               int64
	Stock               int
	SustainabilityScore int // 0-100
	Category            string
	ImageURL            string
	Featured            bool
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
