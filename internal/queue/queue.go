// Package queue runs background jobs out of the request path. Delivery is
// best effort: a job that fails is logged and dropped.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrQueueFull   = errors.New("queue full")
	ErrQueueClosed = errors.New("queue closed")
)

// Queue hands a payload to the handler registered under jobType.
type Queue interface {
	Enqueue(ctx context.Context, jobType string, payload any) error
}

type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

func NewJob(jobType string, payload any) (Job, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("encode %s payload: %w", jobType, err)
	}

	return Job{
		ID:         uuid.NewString(),
		Type:       jobType,
		Payload:    data,
		EnqueuedAt: time.Now().UTC(),
	}, nil
}

type Handler interface {
	Key() string
	Handle(ctx context.Context, job Job) error
}

type Registry struct {
	handlers map[string]Handler
}

func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[string]Handler, len(handlers))}
	for _, h := range handlers {
		r.handlers[h.Key()] = h
	}
	return r
}

func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Process runs the job once. Errors and panics are logged, never returned,
// so a bad job cannot take the worker down.
func (r *Registry) Process(ctx context.Context, job Job) {
	logger := log.With().
		Str("job_id", job.ID).
		Str("job_type", job.Type).
		Logger()

	h, ok := r.handlers[job.Type]
	if !ok {
		logger.Error().Msg("no handler registered for job")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("job handler panicked")
		}
	}()

	if err := h.Handle(ctx, job); err != nil {
		logger.Error().Err(err).Msg("job failed")
		return
	}

	logger.Debug().Dur("latency", time.Since(job.EnqueuedAt)).Msg("job done")
}
