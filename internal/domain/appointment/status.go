package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// CancellationWindowHours is the minimum lead time for a cancellation.
const CancellationWindowHours = 2

// ===============================
// Validations
// ===============================

// CanBook checks the requester/provider pair. provider may be nil.
func CanBook(requesterID uint, providerID uint, provider *models.User) error {
	if requesterID == providerID {
		return ErrSelfBooking
	}
	if provider == nil || !provider.Provider {
		return ErrNotAProvider
	}
	return nil
}

// CanCancel applies, in order: ownership, terminal state, lead time.
func CanCancel(ap *models.Appointment, requesterID uint, now time.Time) error {
	if ap.UserID != requesterID {
		return ErrUnauthorized
	}
	if !ap.IsActive() {
		return ErrAlreadyCanceled
	}
	if !clock.HoursBefore(ap.Date, CancellationWindowHours).After(now) {
		return ErrCancellationWindow
	}
	return nil
}
