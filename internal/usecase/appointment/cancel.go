package appointment

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type CancellationNotifier interface {
	EnqueueCancellationEmail(ctx context.Context, snap jobs.CancellationSnapshot) error
}

type CancelAppointment struct {
	repo     domain.Repository
	notifier CancellationNotifier
	clock    clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier CancellationNotifier,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	requesterID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithParticipants(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, domain.ErrNotFound
	}

	if err := domain.Cancel(ap, requesterID, uc.clock.Now()); err != nil {
		return nil, err
	}

	// a concurrent cancel may have won since the lookup
	if err := uc.repo.MarkCanceled(ctx, ap.ID, *ap.CanceledAt); err != nil {
		return nil, err
	}

	if err := uc.notifier.EnqueueCancellationEmail(ctx, snapshot(ap)); err != nil {
		log.Error().Err(err).
			Uint("appointment_id", ap.ID).
			Msg("cancellation mail not enqueued")
	}

	return ap, nil
}

func snapshot(ap *models.Appointment) jobs.CancellationSnapshot {
	snap := jobs.CancellationSnapshot{
		AppointmentID: ap.ID,
		Date:          ap.Date,
	}
	if ap.CanceledAt != nil {
		snap.CanceledAt = *ap.CanceledAt
	}
	if ap.Provider != nil {
		snap.Provider = jobs.Contact{Name: ap.Provider.Name, Email: ap.Provider.Email}
	}
	if ap.User != nil {
		snap.User = jobs.Contact{Name: ap.User.Name}
	}
	return snap
}
