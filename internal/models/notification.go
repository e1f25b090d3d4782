package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Content string `gorm:"type:text;not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
