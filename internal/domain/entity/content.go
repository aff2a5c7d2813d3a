package entity

import "time"

// BlogPost is a bilingual knowledge-center article. Both language variants
// must be populated before Published is set; this is a caller contract,
// not enforced at the data layer.
type BlogPost struct {
	ID            uint
	TitlePt       string
	TitleEn       string
	ExcerptPt     string
	ExcerptEn     string
	ContentPt     string
	ContentEn     string
	Category      string
	CoverImageURL string
	Published     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceOffering is a bookable agricultural service (soil analysis,
// irrigation planning, training). Bilingual, admin-owned lifecycle.
type ServiceOffering struct {
	ID            uint
	TitlePt       string
	TitleEn       string
	DescriptionPt string
	DescriptionEn string
	Price         int64
	Duration      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EventStatus is the visibility state of an event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusPast      EventStatus = "past"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid checks if the EventStatus is a valid value.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusPast, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// Event is a bilingual community event (workshops, fairs).
type Event struct {
	ID            uint
	TitlePt       string
	TitleEn       string
	DescriptionPt string
	DescriptionEn string
	Location      string
	StartsAt      time.Time
	Status        EventStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// News is a bilingual news entry with a published flag gating public
// visibility.
type News struct {
	ID        uint
	TitlePt   string
	TitleEn   string
	ExcerptPt string
	ExcerptEn string
	ContentPt string
	ContentEn string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
