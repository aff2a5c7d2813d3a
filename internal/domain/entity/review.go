package entity

import "time"

// Review belongs to one user and one product. Rating is 1-5. The average
// rating per product is computed on read, never cached on the product row.
type Review struct {
	ID        uint
	UserID    uint
	ProductID uint
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
