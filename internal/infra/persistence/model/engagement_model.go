package model

import "time"

// FavoriteModel mirrors the 'favorites' table.
type FavoriteModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_favorites_user_item"`
	ItemType  string `gorm:"type:varchar(16);not null;uniqueIndex:idx_favorites_user_item;check:item_type IN ('product','blog')"`
	ItemID    uint   `gorm:"not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	ProductID uint   `gorm:"not null;index"`
	Rating    int    `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// CartItemModel mirrors the 'cart_items' table, keyed by (user, product).
type CartItemModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
