package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/locale"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	RequesterID uint
	ProviderID  uint
	Date        string
}

type ProviderNotifier interface {
	Notify(ctx context.Context, providerID uint, content string) error
}

// Settings are the presentation defaults shared by the use cases.
type Settings struct {
	Locale   string
	Location *time.Location
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	users    domain.Users
	notifier ProviderNotifier
	clock    clock.Clock
	settings Settings
}

func NewCreateAppointment(
	repo domain.Repository,
	users domain.Users,
	notifier ProviderNotifier,
	clk clock.Clock,
	settings Settings,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		users:    users,
		notifier: notifier,
		clock:    clk,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if in.ProviderID == 0 {
		return nil, domain.ErrValidation
	}
	rawDate, err := parseDateTime(in.Date, uc.settings.location())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Requester / provider
	// --------------------------------------------------
	if in.RequesterID == in.ProviderID {
		return nil, domain.ErrSelfBooking
	}

	provider, err := uc.users.GetUserByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanBook(in.RequesterID, in.ProviderID, provider); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Hour slot
	// --------------------------------------------------
	ap := domain.New(in.RequesterID, in.ProviderID, rawDate)

	if clock.IsPast(ap.Date, uc.clock.Now()) {
		return nil, domain.ErrPastDate
	}

	// --------------------------------------------------
	// 4. Conflict
	// --------------------------------------------------
	existing, err := uc.repo.FindActiveByProviderAndDate(ctx, in.ProviderID, ap.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlotUnavailable
	}

	// The store rejects a concurrent booking that got past the check above.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Provider notification (best effort)
	// --------------------------------------------------
	uc.notifyProvider(ctx, ap)

	return ap, nil
}

func (uc *CreateAppointment) notifyProvider(ctx context.Context, ap *models.Appointment) {
	logger := log.With().
		Uint("appointment_id", ap.ID).
		Uint("provider_id", ap.ProviderID).
		Logger()

	requester, err := uc.users.GetUserByID(ctx, ap.UserID)
	if err != nil || requester == nil {
		logger.Error().Err(err).Msg("notification skipped, requester lookup failed")
		return
	}

	content := locale.NewAppointmentMessage(
		requester.Name,
		ap.Date,
		uc.settings.Locale,
		uc.settings.location(),
	)

	if err := uc.notifier.Notify(ctx, ap.ProviderID, content); err != nil {
		logger.Error().Err(err).Msg("provider notification failed")
	}
}
