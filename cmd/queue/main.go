package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/logger"
	"github.com/BruksfildServices01/appointment-scheduler/internal/mail"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.App.Name+"-queue", cfg.IsLocal())

	if cfg.Queue.Driver != config.QueueDriverRedis {
		log.Fatal().Msg("queue worker needs QUEUE_DRIVER=redis and REDIS_ENABLED=true")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := queue.NewRedisClient(ctx, queue.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer client.Close()

	sender := mail.NewSender(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})

	registry := queue.NewRegistry(
		jobs.NewCancellationMail(sender, cfg.App.Locale, clock.Location(cfg.App.Timezone)),
	)

	if err := queue.NewWorker(client, cfg.Queue.Prefix, registry).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("queue worker stopped")
	}
	log.Info().Msg("queue worker stopped")
}
