package model

import "time"

// ProductModel mirrors the 'products' table. Price is integer MZN.
type ProductModel struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement"`
	NamePt              string `gorm:"type:varchar(255);not null"`
	NameEn              string `gorm:"type:varchar(255);not null"`
	DescriptionPt       string `gorm:"type:text"`
	DescriptionEn       string `gorm:"type:text"`
	Price               int64  `gorm:"not null"`
	Stock               int    `gorm:"not null;default:0"`
	SustainabilityScore int    `gorm:"not null;default:0"`
	Category            string `gorm:"type:varchar(64);index"`
	ImageURL            string `gorm:"type:varchar(512)"`
	Featured            bool   `gorm:"not null;default:false"`
	Active              bool   `gorm:"not null;default:true;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
