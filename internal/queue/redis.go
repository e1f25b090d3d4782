package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func listKey(prefix, jobType string) string {
	return prefix + ":" + jobType
}

// RedisQueue pushes jobs onto one Redis list per job type.
type RedisQueue struct {
	client *redis.Client
	prefix string
}

func NewRedisQueue(client *redis.Client, prefix string) *RedisQueue {
	return &RedisQueue{client: client, prefix: prefix}
}

func (q *RedisQueue) Enqueue(ctx context.Context, jobType string, payload any) error {
	job, err := NewJob(jobType, payload)
	if err != nil {
		return err
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	if err := q.client.LPush(ctx, listKey(q.prefix, jobType), data).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", jobType, err)
	}
	return nil
}

// Worker pops jobs for every registered type and runs them one at a time.
type Worker struct {
	client   *redis.Client
	prefix   string
	registry *Registry
	timeout  time.Duration
}

func NewWorker(client *redis.Client, prefix string, registry *Registry) *Worker {
	return &Worker{
		client:   client,
		prefix:   prefix,
		registry: registry,
		timeout:  5 * time.Second,
	}
}

// Run blocks until ctx is canceled.
func (w *Worker) Run(ctx context.Context) error {
	keys := make([]string, 0)
	for _, k := range w.registry.Keys() {
		keys = append(keys, listKey(w.prefix, k))
	}
	if len(keys) == 0 {
		return errors.New("worker has no registered jobs")
	}

	log.Info().Strs("queues", keys).Msg("queue worker started")

	for {
		if ctx.Err() != nil {
			return nil
		}

		res, err := w.client.BRPop(ctx, w.timeout, keys...).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Msg("queue pop failed")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		// BRPOP replies with [key, value]
		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			log.Error().Err(err).Str("queue", res[0]).Msg("discarding malformed job")
			continue
		}

		w.registry.Process(ctx, job)
	}
}

var _ Queue = (*RedisQueue)(nil)
