package models

import "time"

type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Age         *int      `json:"age,omitempty"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
