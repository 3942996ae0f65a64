package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"user_id"`
	EventName   string    `gorm:"not null" json:"event_name"`
	Date        string    `gorm:"type:date;not null;index" json:"date"`
	Time        string    `gorm:"type:time;not null" json:"time"`
	VenueOrLink string    `gorm:"not null" json:"venue_or_link"`
	Details     string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
