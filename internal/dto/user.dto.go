package dto

import "github.com/BruksfildServices01/appointment-scheduler/internal/models"

type UserDTO struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Provider bool     `json:"provider"`
	Avatar   *FileDTO `json:"avatar,omitempty"`
}

type SessionDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

func File(f *models.File) *FileDTO {
	if f == nil {
		return nil
	}
	return &FileDTO{ID: f.ID, Path: f.Path, URL: f.URL}
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Provider: u.Provider,
		Avatar:   File(u.Avatar),
	}
}

func Participant(u *models.User) ParticipantDTO {
	if u == nil {
		return ParticipantDTO{}
	}
	return ParticipantDTO{ID: u.ID, Name: u.Name, Avatar: File(u.Avatar)}
}
