package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	notifdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.Notification, error) {

	var out []models.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationGormRepository) GetNotification(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) UpdateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

var (
	_ notifdomain.Repository = (*NotificationGormRepository)(nil)
	_ domain.Notifications   = (*NotificationGormRepository)(nil)
)
