package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/httpresp"
	ucReport "github.com/BruksfildServices01/barbearia/internal/usecase/report"
)

type ReportHandler struct {
	period  *ucReport.GetPeriodReport
	summary *ucReport.GetSummary
}

func NewReportHandler(period *ucReport.GetPeriodReport, summary *ucReport.GetSummary) *ReportHandler {
	return &ReportHandler{period: period, summary: summary}
}

// Period: ?period=month|quarter|year&include_future=true
func (h *ReportHandler) Period(c *gin.Context) {
	period, err := ucReport.ParsePeriod(c.Query("period"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	includeFuture := false
	if raw := c.Query("include_future"); raw != "" {
		if includeFuture, err = strconv.ParseBool(raw); err != nil {
			httperr.BadRequest(c, "invalid_request", "include_future inválido.")
			return
		}
	}

	r, err := h.period.Execute(c.Request.Context(), ucReport.PeriodReportInput{
		Period:        period,
		IncludeFuture: includeFuture,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	httpresp.OK(c, h.summary.Execute(c.Request.Context()))
}
