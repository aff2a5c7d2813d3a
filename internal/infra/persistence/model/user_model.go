// Package model holds the GORM-specific structs mirroring the database
// tables.
package model

import "time"

// UserModel mirrors the 'users' table. Users are keyed externally by the
// identity provider's OpenID and internally by an autoincrement ID.
type UserModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	OpenID             string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string `gorm:"type:varchar(100)"`
	Email              string `gorm:"type:varchar(255);index"`
	LoginMethod        string `gorm:"type:varchar(32)"`
	Role               string `gorm:"type:varchar(16);not null;default:user"`
	AccessLevel        string `gorm:"type:varchar(16);not null;default:free"`
	Phone              string `gorm:"type:varchar(32)"`
	Address            string `gorm:"type:text"`
	Bio                string `gorm:"type:text"`
	PictureURL         string `gorm:"type:varchar(512)"`
	EmailNotifications bool   `gorm:"not null;default:true"`
	OrderUpdates       bool   `gorm:"not null;default:true"`
	LastSignedIn       time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
