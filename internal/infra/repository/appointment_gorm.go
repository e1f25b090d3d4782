package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// ActiveSlotIndex enforces one active appointment per provider and hour.
const ActiveSlotIndex = "idx_appointments_active_slot"

// EnsureActiveSlotIndex creates the partial unique index backing
// ActiveSlotIndex. AutoMigrate cannot express the WHERE clause.
func EnsureActiveSlotIndex(db *gorm.DB) error {
	return db.Exec(fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s
		 ON appointments (provider_id, date)
		 WHERE canceled_at IS NULL`,
		ActiveSlotIndex,
	)).Error
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) FindActiveByProviderAndDate(
	ctx context.Context,
	providerID uint,
	date time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND canceled_at IS NULL AND date = ?", providerID, date).
		Take(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
	if httperr.IsUniqueViolation(err, ActiveSlotIndex) {
		return domain.ErrSlotUnavailable
	}
	return err
}

// --------------------------------------------------
// Cancellation
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentWithParticipants(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Provider", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&ap, appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) MarkCanceled(
	ctx context.Context,
	appointmentID uint,
	at time.Time,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND canceled_at IS NULL", appointmentID).
		Updates(map[string]any{
			"canceled_at": at,
			"updated_at":  at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlreadyCanceled
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveByUser(
	ctx context.Context,
	userID uint,
	limit int,
	offset int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Provider", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar_id")
		}).
		Preload("Provider.Avatar").
		Where("user_id = ? AND canceled_at IS NULL", userID).
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListActiveByProviderForPeriod(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Where(
			"provider_id = ? AND canceled_at IS NULL AND date >= ? AND date < ?",
			providerID, start, end,
		).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
