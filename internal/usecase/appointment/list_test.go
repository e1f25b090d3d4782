package appointment

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

func TestListAppointmentsPages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	booked := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < PageSize+5; i++ {
		day := booked.AddDate(0, 0, i)
		_, err := f.create(booked).Execute(ctx, CreateAppointmentInput{
			RequesterID: f.client.ID,
			ProviderID:  f.provider.ID,
			Date:        fmt.Sprintf("%sT10:00:00Z", day.Format("2006-01-02")),
		})
		require.NoError(t, err)
	}

	uc := NewListAppointments(f.store, clock.Fixed(booked))

	first, err := uc.Execute(ctx, f.client.ID, 0)
	require.NoError(t, err)
	require.Len(t, first, PageSize)
	assert.Equal(t, time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC), first[0].Date)
	assert.Equal(t, "Paula", first[0].Provider.Name)
	assert.Equal(t, f.provider.ID, first[0].Provider.ID)

	second, err := uc.Execute(ctx, f.client.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.True(t, second[0].Date.After(first[PageSize-1].Date))

	none, err := uc.Execute(ctx, f.other.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListAppointmentsFlagsAndCanceled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := book(t, f, "2099-01-01T09:00:00Z")
	gone := book(t, f, "2099-01-01T15:00:00Z")

	_, err := f.cancel(time.Date(2099, 1, 1, 1, 0, 0, 0, time.UTC)).Execute(ctx, f.client.ID, gone.ID)
	require.NoError(t, err)

	out, err := NewListAppointments(f.store, clock.Fixed(time.Date(2099, 1, 1, 8, 0, 0, 0, time.UTC))).
		Execute(ctx, f.client.ID, 1)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ap.ID, out[0].ID)
	assert.False(t, out[0].Past)
	assert.False(t, out[0].Cancelable)
}

func TestListProviderSchedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	book(t, f, "2099-01-01T09:00:00Z")
	book(t, f, "2099-01-01T11:00:00Z")
	book(t, f, "2099-01-02T09:00:00Z")

	uc := NewListProviderSchedule(f.store, f.store, clock.Fixed(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)), utc)

	out, err := uc.Execute(ctx, f.provider.ID, "2099-01-01")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Alice", out[0].User.Name)
	assert.Equal(t, 11, out[1].Date.Hour())

	today, err := uc.Execute(ctx, f.provider.ID, "")
	require.NoError(t, err)
	assert.Len(t, today, 2)

	_, err = uc.Execute(ctx, f.client.ID, "2099-01-01")
	assert.ErrorIs(t, err, domain.ErrRequesterNotProvider)

	_, err = uc.Execute(ctx, f.provider.ID, "01/01/2099")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	book(t, f, "2099-01-01T14:00:00Z")

	now := time.Date(2099, 1, 1, 10, 30, 0, 0, time.UTC)
	uc := NewGetAvailability(f.store, f.store, clock.Fixed(now), utc)

	slots, err := uc.Execute(ctx, f.provider.ID, "2099-01-01")
	require.NoError(t, err)
	require.Len(t, slots, domain.LastHour-domain.FirstHour+1)

	available := make(map[string]bool, len(slots))
	for _, s := range slots {
		available[s.Time] = s.Available
	}
	assert.False(t, available["08:00"])
	assert.False(t, available["10:00"])
	assert.True(t, available["11:00"])
	assert.False(t, available["14:00"])
	assert.True(t, available["19:00"])

	_, err = uc.Execute(ctx, f.client.ID, "2099-01-01")
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestListAppointmentsRejectsOverflowingPage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewListAppointments(f.store, clock.Fixed(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))

	last, err := uc.Execute(ctx, f.client.ID, MaxPage)
	require.NoError(t, err)
	assert.Empty(t, last)

	for _, page := range []int{MaxPage + 1, math.MaxInt} {
		out, err := uc.Execute(ctx, f.client.ID, page)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}
