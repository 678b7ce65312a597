package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	"github.com/BruksfildServices01/barbearia/internal/backup"
	"github.com/BruksfildServices01/barbearia/internal/cachever"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/httpresp"
)

type reminderCanceller interface {
	CancelAll()
}

type priceReloader interface {
	Reload(ctx context.Context)
}

// MaintenanceHandler: health, versão do cache, limpeza total e backup.
type MaintenanceHandler struct {
	cache     *cachever.Checker
	reminders reminderCanceller
	prices    priceReloader
	backup    *backup.Exporter
	audit     *audit.Dispatcher
	log       *zap.SugaredLogger
}

func NewMaintenanceHandler(
	cache *cachever.Checker,
	reminders reminderCanceller,
	prices priceReloader,
	exporter *backup.Exporter,
	audit *audit.Dispatcher,
	log *zap.SugaredLogger,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		cache:     cache,
		reminders: reminders,
		prices:    prices,
		backup:    exporter,
		audit:     audit,
		log:       log,
	}
}

func (h *MaintenanceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *MaintenanceHandler) CacheVersion(c *gin.Context) {
	v, err := h.cache.CurrentVersion(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"stored":   v,
		"expected": cachever.Version,
	})
}

// ClearCache apaga tudo: clientes, agendamentos, preços e mensagens.
func (h *MaintenanceHandler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.cache.ClearAll(ctx); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.reminders.CancelAll()
	h.prices.Reload(ctx)

	h.log.Warnw("store cleared on request")
	h.audit.Dispatch(audit.Event{Action: "store_cleared", Entity: "store"})

	httpresp.NoContent(c)
}

func (h *MaintenanceHandler) Backup(c *gin.Context) {
	key, err := h.backup.Export(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "backup_exported", Entity: "store", EntityID: key})
	httpresp.Created(c, gin.H{"key": key})
}
