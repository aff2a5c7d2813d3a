package model

import "time"

// OrderModel mirrors the 'orders' table. Status is constrained to the five
// lifecycle values at the database level.
type OrderModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	UserID          uint   `gorm:"not null;index"`
	Status          string `gorm:"type:varchar(16);not null;default:pending;check:status IN ('pending','processing','shipped','delivered','cancelled')"`
	DeliveryAddress string `gorm:"type:text;not null"`
	DeliveryCity    string `gorm:"type:varchar(100);not null"`
	DeliveryPhone   string `gorm:"type:varchar(32);not null"`
	PaymentMethod   string `gorm:"type:varchar(64);not null"`
	Notes           string `gorm:"type:text"`
	TotalAmount     int64  `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. ProductName and Price are
// snapshots; there is deliberately no foreign key to products so deleting a
// product leaves historical items untouched.
type OrderItemModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	OrderID     uint   `gorm:"not null;index"`
	ProductID   uint   `gorm:"not null"`
	ProductName string `gorm:"type:varchar(255);not null"`
	Price       int64  `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
