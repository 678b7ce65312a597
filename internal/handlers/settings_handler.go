package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/httpresp"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/pricing"
	ucMessaging "github.com/BruksfildServices01/barbearia/internal/usecase/messaging"
)

// SettingsHandler cuida de preços e modelos de mensagem.
type SettingsHandler struct {
	prices    *pricing.Service
	templates *ucMessaging.ManageTemplates
}

func NewSettingsHandler(prices *pricing.Service, templates *ucMessaging.ManageTemplates) *SettingsHandler {
	return &SettingsHandler{prices: prices, templates: templates}
}

type PriceView struct {
	Service models.ServiceType `json:"service"`
	Label   string             `json:"label"`
	Price   float64            `json:"price"`
}

type TemplateRequest struct {
	Text string `json:"text" binding:"required"`
}

// ======================================================
// PRICES
// ======================================================

func (h *SettingsHandler) GetPrices(c *gin.Context) {
	current := h.prices.Current()

	out := make([]PriceView, 0, len(models.ServiceTypes))
	for _, st := range models.ServiceTypes {
		out = append(out, PriceView{Service: st, Label: st.Label(), Price: current[st]})
	}
	httpresp.List(c, out)
}

// UpdatePrices recebe {"HaircutOnly": 35, ...}; serviços ausentes mantêm o valor.
func (h *SettingsHandler) UpdatePrices(c *gin.Context) {
	var req map[string]float64
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	table := make(pricing.Table, len(req))
	for k, v := range req {
		table[models.ServiceType(k)] = v
	}

	if err := h.prices.Save(c.Request.Context(), table); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.GetPrices(c)
}

// ======================================================
// TEMPLATES
// ======================================================

func (h *SettingsHandler) ListTemplates(c *gin.Context) {
	httpresp.OK(c, h.templates.List(c.Request.Context()))
}

func (h *SettingsHandler) UpdateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.templates.Set(c.Request.Context(), c.Param("kind"), req.Text); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.ListTemplates(c)
}

func (h *SettingsHandler) ResetTemplate(c *gin.Context) {
	if err := h.templates.Reset(c.Request.Context(), c.Param("kind")); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.ListTemplates(c)
}
