package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// Repository is the appointment store. Lookups return (nil, nil) when the
// record does not exist.
type Repository interface {
	// -------- Booking (availability / create) --------
	FindActiveByProviderAndDate(
		ctx context.Context,
		providerID uint,
		date time.Time,
	) (*models.Appointment, error)

	// CreateAppointment returns ErrSlotUnavailable when the storage layer
	// already holds an active appointment for the same provider and date.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Cancellation --------
	GetAppointmentWithParticipants(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// MarkCanceled sets canceled_at on an active appointment. It returns
	// ErrAlreadyCanceled when the appointment is no longer active.
	MarkCanceled(
		ctx context.Context,
		appointmentID uint,
		at time.Time,
	) error

	// -------- Listing --------
	ListActiveByUser(
		ctx context.Context,
		userID uint,
		limit int,
		offset int,
	) ([]models.Appointment, error)

	ListActiveByProviderForPeriod(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

// Users is the read side of the user store used by the scheduling rules.
type Users interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Notifications is the append side of the in-app notification store.
type Notifications interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}
