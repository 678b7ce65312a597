package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	"github.com/BruksfildServices01/barbearia/internal/backup"
	"github.com/BruksfildServices01/barbearia/internal/cachever"
	"github.com/BruksfildServices01/barbearia/internal/config"
	infraRepo "github.com/BruksfildServices01/barbearia/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia/internal/logger"
	"github.com/BruksfildServices01/barbearia/internal/messaging"
	"github.com/BruksfildServices01/barbearia/internal/metrics"
	"github.com/BruksfildServices01/barbearia/internal/notification"
	"github.com/BruksfildServices01/barbearia/internal/pricing"
	"github.com/BruksfildServices01/barbearia/internal/routes"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatalw("server stopped", "error", err)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 STORE
	// ======================================================
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	wiped, err := cachever.NewChecker(store, log).CheckAndClear(ctx)
	if err != nil {
		return err
	}
	if wiped {
		log.Warnw("stored data cleared", "version", cachever.Version)
	}

	// ======================================================
	// 🔧 SINGLETONS
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	clock := timezone.SystemClock(cfg.Timezone)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("barbearia")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(log), log)
	defer auditDispatcher.Close()

	clients := infraRepo.NewClientKVRepository(store, log, m)
	appointments := infraRepo.NewAppointmentKVRepository(store, clock, log, m)

	prices := pricing.NewService(store, log)
	prices.Reload(ctx)

	templates := messaging.NewTemplates(store, log)
	sender := messaging.NewSender(templates, messaging.LogOpener{Log: log}, loc, log)

	reminders := notification.NewScheduler(
		notification.LogSink{Log: log.Named("reminder")},
		appointments,
		clock,
		loc,
		log,
	)
	defer reminders.CancelAll()

	// timers não sobrevivem a restart
	n := reminders.ScheduleAll(appointments.Upcoming(ctx))
	log.Infow("reminders scheduled", "count", n)

	var exporter *backup.Exporter
	if cfg.Backup.Enabled() {
		exporter = backup.NewExporter(store, backup.NewS3Client(cfg.Backup), cfg.Backup.Bucket, clock, log)
	}

	if !cfg.AuthEnabled() {
		log.Warnw("OWNER_PASSWORD_HASH not set, API is open")
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if !cfg.LogDev {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          log,
		Metrics:      m,
		Clock:        clock,
		Location:     loc,
		Clients:      clients,
		Appointments: appointments,
		Pricing:      prices,
		Templates:    templates,
		Sender:       sender,
		Reminders:    reminders,
		Cache:        cachever.NewChecker(store, log),
		Backup:       exporter,
		Audit:        auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
