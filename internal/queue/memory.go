package queue

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// MemoryQueue runs jobs on a single in-process worker goroutine.
type MemoryQueue struct {
	registry *Registry
	queue    chan Job

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewMemoryQueue(registry *Registry, size int) *MemoryQueue {
	q := &MemoryQueue{
		registry: registry,
		queue:    make(chan Job, size),
		done:     make(chan struct{}),
	}

	go q.worker()
	return q
}

func (q *MemoryQueue) worker() {
	defer close(q.done)

	for job := range q.queue {
		q.registry.Process(context.Background(), job)
	}
}

// Enqueue never blocks: a full buffer rejects the job.
func (q *MemoryQueue) Enqueue(_ context.Context, jobType string, payload any) error {
	job, err := NewJob(jobType, payload)
	if err != nil {
		return err
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.queue <- job:
		return nil
	default:
		log.Warn().Str("job_type", jobType).Msg("memory queue full, dropping job")
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for the buffered ones to finish.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.queue)
	}
	q.mu.Unlock()

	<-q.done
}

var _ Queue = (*MemoryQueue)(nil)
