package dto

import "time"

type FileDTO struct {
	ID   uint   `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type ParticipantDTO struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Avatar *FileDTO `json:"avatar,omitempty"`
}

// AppointmentListDTO is one row of the requester's appointment list.
type AppointmentListDTO struct {
	ID         uint           `json:"id"`
	Date       time.Time      `json:"date"`
	Past       bool           `json:"past"`
	Cancelable bool           `json:"cancelable"`
	Provider   ParticipantDTO `json:"provider"`
}

// ScheduleDTO is one row of a provider's day schedule.
type ScheduleDTO struct {
	ID   uint           `json:"id"`
	Date time.Time      `json:"date"`
	User ParticipantDTO `json:"user"`
}
