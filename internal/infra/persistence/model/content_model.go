package model

import "time"

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TitlePt       string `gorm:"type:varchar(255);not null"`
	TitleEn       string `gorm:"type:varchar(255);not null"`
	ExcerptPt     string `gorm:"type:text"`
	ExcerptEn     string `gorm:"type:text"`
	ContentPt     string `gorm:"type:text"`
	ContentEn     string `gorm:"type:text"`
	Category      string `gorm:"type:varchar(64);index"`
	CoverImageURL string `gorm:"type:varchar(512)"`
	Published     bool   `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ServiceOfferingModel mirrors the 'services' table.
type ServiceOfferingModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TitlePt       string `gorm:"type:varchar(255);not null"`
	TitleEn       string `gorm:"type:varchar(255);not null"`
	DescriptionPt string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	Price         int64  `gorm:"not null;default:0"`
	Duration      string `gorm:"type:varchar(64)"`
	Active        bool   `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceOfferingModel) TableName() string {
	return "services"
}

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TitlePt       string `gorm:"type:varchar(255);not null"`
	TitleEn       string `gorm:"type:varchar(255);not null"`
	DescriptionPt string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	Location      string `gorm:"type:varchar(255)"`
	StartsAt      time.Time
	Status        string `gorm:"type:varchar(16);not null;default:upcoming;check:status IN ('upcoming','past','cancelled')"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	TitlePt   string `gorm:"type:varchar(255);not null"`
	TitleEn   string `gorm:"type:varchar(255);not null"`
	ExcerptPt string `gorm:"type:text"`
	ExcerptEn string `gorm:"type:text"`
	ContentPt string `gorm:"type:text"`
	ContentEn string `gorm:"type:text"`
	Published bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}

// ConsultationRequestModel mirrors the 'consultation_requests' table.
type ConsultationRequestModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	UserID        uint   `gorm:"not null;index"`
	ServiceID     uint   `gorm:"not null;index"`
	Name          string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(255);not null"`
	Phone         string `gorm:"type:varchar(32)"`
	PreferredDate string `gorm:"type:varchar(32)"`
	Message       string `gorm:"type:text"`
	Status        string `gorm:"type:varchar(16);not null;default:pending;check:status IN ('pending','confirmed','completed','cancelled')"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsultationRequestModel) TableName() string {
	return "consultation_requests"
}
