package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	ProviderID uint  `gorm:"not null;index" json:"provider_id"`
	Provider   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider,omitempty"`

	// always the start of an hour
	Date       time.Time  `gorm:"not null" json:"date"`
	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) IsActive() bool {
	return a.CanceledAt == nil
}
