package user

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

var (
	ErrValidation = httperr.NewBusiness(
		http.StatusBadRequest, "validation_fails", "Validation fails")
	ErrInvalidEmailDomain = httperr.NewBusiness(
		http.StatusBadRequest, "invalid_email_domain", "Email domain does not look valid")
	ErrEmailTaken = httperr.NewBusiness(
		http.StatusBadRequest, "email_taken", "User already exists")
	ErrInvalidCredentials = httperr.NewBusiness(
		http.StatusUnauthorized, "invalid_credentials", "Email or password does not match")
	ErrNotFound = httperr.NewBusiness(
		http.StatusNotFound, "user_not_found", "User not found")
	ErrInvalidAvatar = httperr.NewBusiness(
		http.StatusBadRequest, "invalid_avatar", "Avatar must be a JPEG, PNG or WebP image")
)

// Repository is the user store. Lookups return (nil, nil) when absent.
type Repository interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser returns ErrEmailTaken on a duplicate email.
	CreateUser(ctx context.Context, u *models.User) error

	ListProviders(ctx context.Context) ([]models.User, error)

	CreateFile(ctx context.Context, f *models.File) error
	SetAvatar(ctx context.Context, userID uint, fileID uint) error
}
