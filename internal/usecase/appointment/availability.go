package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo     domain.Repository
	users    domain.Users
	clock    clock.Clock
	settings Settings
}

func NewGetAvailability(
	repo domain.Repository,
	users domain.Users,
	clk clock.Clock,
	settings Settings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		users:    users,
		clock:    clk,
		settings: settings,
	}
}

// Execute lists the provider's hour slots for the day. A slot is available
// when it is still in the future and holds no active appointment.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	providerID uint,
	date string,
) ([]domain.TimeSlot, error) {

	provider, err := uc.users.GetUserByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.Provider {
		return nil, domain.ErrProviderNotFound
	}

	loc := uc.settings.location()
	now := uc.clock.Now()

	day, err := parseDay(date, now, loc)
	if err != nil {
		return nil, err
	}
	start, end := clock.DayBounds(day, loc)

	appointments, err := uc.repo.ListActiveByProviderForPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	booked := make(map[int64]struct{}, len(appointments))
	for _, ap := range appointments {
		booked[ap.Date.Unix()] = struct{}{}
	}

	slots := make([]domain.TimeSlot, 0, domain.LastHour-domain.FirstHour+1)
	for _, slot := range domain.DaySlots(day, loc) {
		_, taken := booked[slot.Unix()]
		slots = append(slots, domain.TimeSlot{
			Time:      slot.Format("15:04"),
			Value:     slot,
			Available: !taken && !clock.IsPast(slot, now),
		})
	}

	return slots, nil
}
