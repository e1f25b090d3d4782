package notification

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	notifdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// ListNotifications returns the newest notifications of a provider.
type ListNotifications struct {
	repo  notifdomain.Repository
	users domain.Users
}

func NewListNotifications(repo notifdomain.Repository, users domain.Users) *ListNotifications {
	return &ListNotifications{repo: repo, users: users}
}

func (uc *ListNotifications) Execute(ctx context.Context, userID uint) ([]models.Notification, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Provider {
		return nil, domain.ErrRequesterNotProvider
	}

	return uc.repo.ListForUser(ctx, userID, notifdomain.ListLimit)
}

type MarkRead struct {
	repo notifdomain.Repository
}

func NewMarkRead(repo notifdomain.Repository) *MarkRead {
	return &MarkRead{repo: repo}
}

// Execute marks the notification read. Notifications of other users are
// reported as not found.
func (uc *MarkRead) Execute(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	n, err := uc.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil || n.UserID != userID {
		return nil, notifdomain.ErrNotFound
	}

	if n.Read {
		return n, nil
	}

	n.Read = true
	if err := uc.repo.UpdateNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
