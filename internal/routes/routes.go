package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-scheduler/internal/auth"
	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	notifdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/notification"
	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/handlers"
	"github.com/BruksfildServices01/appointment-scheduler/internal/middleware"
	"github.com/BruksfildServices01/appointment-scheduler/internal/notification"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
	"github.com/BruksfildServices01/appointment-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
	ucNotification "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/notification"
	ucUser "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/validators"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Config *config.Config
	Clock  clock.Clock

	Appointments  domain.Repository
	Users         userdomain.Repository
	Notifications notifdomain.Repository

	Queue   queue.Queue
	Storage storage.Storage
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.HTTP.CORSOrigins...))

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	dispatcher := notification.NewDispatcher(deps.Notifications, deps.Queue)

	settings := ucAppointment.Settings{
		Locale:   cfg.App.Locale,
		Location: clock.Location(cfg.App.Timezone),
	}

	var verifyDomain func(string) bool
	if cfg.Auth.VerifyEmailDomain {
		verifyDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		deps.Appointments,
		deps.Users,
		dispatcher,
		deps.Clock,
		settings,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		deps.Appointments,
		dispatcher,
		deps.Clock,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(deps.Appointments, deps.Clock)
	scheduleUC := ucAppointment.NewListProviderSchedule(deps.Appointments, deps.Users, deps.Clock, settings)
	availabilityUC := ucAppointment.NewGetAvailability(deps.Appointments, deps.Users, deps.Clock, settings)

	registerUC := ucUser.NewRegisterUser(deps.Users, verifyDomain)
	sessionUC := ucUser.NewCreateSession(deps.Users, tokens, deps.Clock)
	providersUC := ucUser.NewListProviders(deps.Users)
	avatarUC := ucUser.NewUploadAvatar(deps.Users, deps.Storage)

	listNotificationsUC := ucNotification.NewListNotifications(deps.Notifications, deps.Users)
	markReadUC := ucNotification.NewMarkRead(deps.Notifications)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUC)
	providerHandler := handlers.NewProviderHandler(providersUC, availabilityUC)
	notificationHandler := handlers.NewNotificationHandler(listNotificationsUC, markReadUC)
	userHandler := handlers.NewUserHandler(deps.Users, registerUC)
	sessionHandler := handlers.NewSessionHandler(sessionUC)
	fileHandler := handlers.NewFileHandler(avatarUC)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if disk, ok := deps.Storage.(*storage.DiskStorage); ok {
		r.Static("/files", disk.Root())
	}

	r.POST("/users", userHandler.Register)
	r.POST("/sessions", middleware.RateLimit(limiter), sessionHandler.Create)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		api.GET("/users/me", userHandler.Me)
		api.POST("/files", fileHandler.Upload)

		api.GET("/providers", providerHandler.List)
		api.GET("/providers/:providerId/available", providerHandler.Availability)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)

		api.GET("/schedule", scheduleHandler.Get)

		api.GET("/notifications", notificationHandler.List)
		api.PUT("/notifications/:id", notificationHandler.MarkRead)
	}
}
