package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	"github.com/BruksfildServices01/barbearia/internal/backup"
	"github.com/BruksfildServices01/barbearia/internal/cachever"
	"github.com/BruksfildServices01/barbearia/internal/config"
	"github.com/BruksfildServices01/barbearia/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbearia/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia/internal/messaging"
	"github.com/BruksfildServices01/barbearia/internal/metrics"
	"github.com/BruksfildServices01/barbearia/internal/middleware"
	"github.com/BruksfildServices01/barbearia/internal/pricing"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbearia/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/barbearia/internal/usecase/client"
	ucMessaging "github.com/BruksfildServices01/barbearia/internal/usecase/messaging"
	ucReport "github.com/BruksfildServices01/barbearia/internal/usecase/report"
)

// Reminders is satisfied by *notification.Scheduler.
type Reminders interface {
	ucAppointment.Reminders
	CancelAll()
}

// Deps are the singletons built by main.
type Deps struct {
	Config   *config.Config
	Log      *zap.SugaredLogger
	Metrics  *metrics.Metrics
	Clock    timezone.Clock
	Location *time.Location

	Clients      *infraRepo.ClientKVRepository
	Appointments *infraRepo.AppointmentKVRepository
	Pricing      *pricing.Service
	Templates    *messaging.Templates
	Sender       *messaging.Sender
	Reminders    Reminders
	Cache        *cachever.Checker
	Backup       *backup.Exporter
	Audit        *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(d.Config.AllowedOrigins...),
	)

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	listClientsUC := ucClient.NewListClients(d.Clients, d.Appointments, d.Clock)

	clientHandler := handlers.NewClientHandler(
		ucClient.NewCreateClient(d.Clients, d.Audit, d.Clock),
		ucClient.NewGetClient(d.Clients, d.Appointments, d.Clock),
		ucClient.NewUpdateClient(d.Clients, d.Audit),
		ucClient.NewRemoveClient(d.Clients, d.Audit),
		listClientsUC,
		ucClient.NewListInactiveClients(listClientsUC),
		ucMessaging.NewSendWinBack(d.Clients, d.Sender, d.Audit),
	)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(d.Appointments, d.Clients, d.Reminders, d.Audit, d.Clock, d.Location),
		ucAppointment.NewCompleteAppointment(d.Appointments, d.Pricing, d.Reminders, d.Audit),
		ucAppointment.NewCancelAppointment(d.Appointments, d.Reminders, d.Audit),
		ucAppointment.NewRemoveAppointment(d.Appointments, d.Reminders, d.Audit),
		ucAppointment.NewGetAppointment(d.Appointments),
		ucAppointment.NewListUpcoming(d.Appointments),
		ucAppointment.NewListHistory(d.Appointments),
		ucMessaging.NewSendAppointmentMessage(d.Appointments, d.Clients, d.Sender, d.Audit),
	)

	// ======================================================
	// 🧩 OTHER HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Config)

	settingsHandler := handlers.NewSettingsHandler(
		d.Pricing,
		ucMessaging.NewManageTemplates(d.Templates),
	)

	reportHandler := handlers.NewReportHandler(
		ucReport.NewGetPeriodReport(d.Appointments, d.Clock, d.Location),
		ucReport.NewGetSummary(d.Clients, d.Appointments),
	)

	maintenanceHandler := handlers.NewMaintenanceHandler(
		d.Cache,
		d.Reminders,
		d.Pricing,
		d.Backup,
		d.Audit,
		d.Log,
	)

	// ======================================================
	// 🩺 INFRA
	// ======================================================
	r.GET("/health", maintenanceHandler.Health)
	if d.Config.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/inactive", clientHandler.Inactive)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.POST("/clients/:id/messages/winback", clientHandler.SendWinBack)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/appointments/history", appointmentHandler.History)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/messages/:kind", appointmentHandler.SendMessage)

			// ------------------------------
			// SETTINGS
			// ------------------------------
			secured.GET("/prices", settingsHandler.GetPrices)
			secured.PUT("/prices", settingsHandler.UpdatePrices)

			secured.GET("/messages/templates", settingsHandler.ListTemplates)
			secured.PUT("/messages/templates/:kind", settingsHandler.UpdateTemplate)
			secured.DELETE("/messages/templates/:kind", settingsHandler.ResetTemplate)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/reports", reportHandler.Period)
			secured.GET("/reports/summary", reportHandler.Summary)

			// ------------------------------
			// MAINTENANCE
			// ------------------------------
			secured.GET("/cache/version", maintenanceHandler.CacheVersion)
			secured.POST("/cache/clear", maintenanceHandler.ClearCache)
			secured.POST("/backup", maintenanceHandler.Backup)
		}
	}
}
