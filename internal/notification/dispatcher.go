// Package notification delivers the side effects of booking and
// cancellation: in-app records for providers and the cancellation mail job.
package notification

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
)

type Dispatcher struct {
	store domain.Notifications
	queue queue.Queue
}

func NewDispatcher(store domain.Notifications, q queue.Queue) *Dispatcher {
	return &Dispatcher{store: store, queue: q}
}

// Notify appends an in-app notification for the provider.
func (d *Dispatcher) Notify(ctx context.Context, providerID uint, content string) error {
	n := &models.Notification{
		UserID:  providerID,
		Content: content,
	}
	if err := d.store.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("%w: notify provider %d: %v", domain.ErrNotificationDispatch, providerID, err)
	}
	return nil
}

// EnqueueCancellationEmail hands the snapshot to the queue and returns
// without waiting for delivery.
func (d *Dispatcher) EnqueueCancellationEmail(ctx context.Context, snap jobs.CancellationSnapshot) error {
	if err := d.queue.Enqueue(ctx, jobs.CancellationMailKey, snap); err != nil {
		return fmt.Errorf("%w: enqueue cancellation mail for appointment %d: %v",
			domain.ErrNotificationDispatch, snap.AppointmentID, err)
	}
	return nil
}
