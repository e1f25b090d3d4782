package appointment

import (
	"context"
	"math"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
)

const PageSize = 20

// MaxPage keeps the page offset within int.
const MaxPage = math.MaxInt / PageSize

type ListAppointments struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListAppointments(repo domain.Repository, clk clock.Clock) *ListAppointments {
	return &ListAppointments{repo: repo, clock: clk}
}

// Execute returns one page of the requester's active appointments, soonest
// first. Pages start at 1.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	requesterID uint,
	page int,
) ([]dto.AppointmentListDTO, error) {

	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		return nil, domain.ErrValidation
	}

	appointments, err := uc.repo.ListActiveByUser(ctx, requesterID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			Past:       clock.IsPast(ap.Date, now),
			Cancelable: clock.HoursBefore(ap.Date, domain.CancellationWindowHours).After(now),
			Provider:   dto.Participant(ap.Provider),
		})
	}

	return out, nil
}
