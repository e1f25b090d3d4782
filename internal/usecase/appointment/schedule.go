package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
)

// ListProviderSchedule lists a provider's own active appointments for a day.
type ListProviderSchedule struct {
	repo     domain.Repository
	users    domain.Users
	clock    clock.Clock
	settings Settings
}

func NewListProviderSchedule(
	repo domain.Repository,
	users domain.Users,
	clk clock.Clock,
	settings Settings,
) *ListProviderSchedule {
	return &ListProviderSchedule{
		repo:     repo,
		users:    users,
		clock:    clk,
		settings: settings,
	}
}

func (uc *ListProviderSchedule) Execute(
	ctx context.Context,
	providerID uint,
	date string,
) ([]dto.ScheduleDTO, error) {

	provider, err := uc.users.GetUserByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.Provider {
		return nil, domain.ErrRequesterNotProvider
	}

	loc := uc.settings.location()
	day, err := parseDay(date, uc.clock.Now(), loc)
	if err != nil {
		return nil, err
	}
	start, end := clock.DayBounds(day, loc)

	appointments, err := uc.repo.ListActiveByProviderForPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ScheduleDTO{
			ID:   ap.ID,
			Date: ap.Date,
			User: dto.Participant(ap.User),
		})
	}

	return out, nil
}
