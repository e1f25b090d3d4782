package models

import "time"

// File is an uploaded object, currently only used as a user avatar.
type File struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:255;not null" json:"name"`
	Path string `gorm:"size:255;uniqueIndex;not null" json:"path"`
	URL  string `gorm:"size:512" json:"url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
