package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New builds an active appointment for the hour containing date.
func New(requesterID, providerID uint, date time.Time) *models.Appointment {
	return &models.Appointment{
		UserID:     requesterID,
		ProviderID: providerID,
		Date:       clock.HourStart(date),
	}
}

func Cancel(ap *models.Appointment, requesterID uint, now time.Time) error {
	if err := CanCancel(ap, requesterID, now); err != nil {
		return err
	}

	ap.CanceledAt = &now
	return nil
}
