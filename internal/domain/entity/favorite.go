package entity

import "time"

// FavoriteItemType is the kind of entity a favorite points at.
type FavoriteItemType string

const (
	FavoriteItemProduct FavoriteItemType = "product"
	FavoriteItemBlog    FavoriteItemType = "blog"
)

// IsValid checks if the FavoriteItemType is a valid value.
func (t FavoriteItemType) IsValid() bool {
	return t == FavoriteItemProduct || t == FavoriteItemBlog
}

// Favorite is a (user, itemType, itemID) tuple. Uniqueness per user+item
// is enforced in application logic.
type Favorite struct {
	ID        uint
	UserID    uint
	ItemType  FavoriteItemType
	ItemID    uint
	CreatedAt time.Time
}
