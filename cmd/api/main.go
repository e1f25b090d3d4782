package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/appointment-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/logger"
	"github.com/BruksfildServices01/appointment-scheduler/internal/mail"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
	"github.com/BruksfildServices01/appointment-scheduler/internal/routes"
	"github.com/BruksfildServices01/appointment-scheduler/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.App.Name+"-api", cfg.IsLocal())

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	q, closeQueue, err := newQueue(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("queue unavailable")
	}
	defer closeQueue()

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage unavailable")
	}

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:        cfg,
		Clock:         clock.System{},
		Appointments:  appointmentRepo,
		Users:         userRepo,
		Notifications: notificationRepo,
		Queue:         q,
		Storage:       store,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// newQueue returns the Redis producer when configured, or an in-process
// queue that runs the jobs itself.
func newQueue(ctx context.Context, cfg *config.Config) (queue.Queue, func(), error) {
	if cfg.Queue.Driver == config.QueueDriverRedis {
		client, err := queue.NewRedisClient(ctx, queue.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("jobs go to redis, run cmd/queue to process them")
		return queue.NewRedisQueue(client, cfg.Queue.Prefix), func() { _ = client.Close() }, nil
	}

	registry := queue.NewRegistry(
		jobs.NewCancellationMail(newSender(cfg), cfg.App.Locale, clock.Location(cfg.App.Timezone)),
	)
	mq := queue.NewMemoryQueue(registry, cfg.Queue.BufferSize)
	return mq, mq.Close, nil
}

func newSender(cfg *config.Config) mail.Sender {
	return mail.NewSender(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		return storage.NewS3Storage(storage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			PublicURL: cfg.Storage.PublicURL,
		})
	}
	return storage.NewDiskStorage(cfg.Storage.DiskPath, cfg.App.URL), nil
}
