package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/notification"
)

var utc = Settings{Locale: "en", Location: time.UTC}

type recordingQueue struct {
	mu       sync.Mutex
	payloads map[string][]any
	err      error
}

func (q *recordingQueue) Enqueue(_ context.Context, jobType string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return q.err
	}
	if q.payloads == nil {
		q.payloads = make(map[string][]any)
	}
	q.payloads[jobType] = append(q.payloads[jobType], payload)
	return nil
}

func (q *recordingQueue) cancellations() []jobs.CancellationSnapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []jobs.CancellationSnapshot
	for _, p := range q.payloads[jobs.CancellationMailKey] {
		out = append(out, p.(jobs.CancellationSnapshot))
	}
	return out
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, uint, string) error {
	return errors.New("notifications table missing")
}

type fixture struct {
	store    *memory.Store
	queue    *recordingQueue
	dispatch *notification.Dispatcher

	client   *models.User
	provider *models.User
	other    *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		store: memory.NewStore(),
		queue: &recordingQueue{},
	}
	f.dispatch = notification.NewDispatcher(f.store, f.queue)

	f.client = &models.User{Name: "Alice", Email: "alice@example.com"}
	f.provider = &models.User{Name: "Paula", Email: "paula@example.com", Provider: true}
	f.other = &models.User{Name: "Bob", Email: "bob@example.com"}
	for _, u := range []*models.User{f.client, f.provider, f.other} {
		require.NoError(t, f.store.CreateUser(ctx, u))
	}

	return f
}

func (f *fixture) create(now time.Time) *CreateAppointment {
	return NewCreateAppointment(f.store, f.store, f.dispatch, clock.Fixed(now), utc)
}

func (f *fixture) cancel(now time.Time) *CancelAppointment {
	return NewCancelAppointment(f.store, f.dispatch, clock.Fixed(now))
}
