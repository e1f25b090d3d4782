package notification

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

const ListLimit = 20

var ErrNotFound = httperr.NewBusiness(
	http.StatusNotFound, "notification_not_found", "Notification not found")

type Repository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error

	// ListForUser returns the newest notifications first.
	ListForUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error)

	GetNotification(ctx context.Context, id uint) (*models.Notification, error)
	UpdateNotification(ctx context.Context, n *models.Notification) error
}
