package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/service"
)

// ReportHandler serves the analytics report endpoints. Every range-scoped
// endpoint accepts either a named preset (?range=today|yesterday|week|month)
// or explicit ?start=YYYY-MM-DD&end=YYYY-MM-DD bounds.
type ReportHandler struct {
	service *service.ReportService
	now     func() time.Time
}

// NewReportHandler builds the handler on the service's clock so range
// presets and the month-to-date math resolve against the same instant.
func NewReportHandler(service *service.ReportService) *ReportHandler {
	now := time.Now
	if service != nil {
		now = service.Clock()
	}
	return &ReportHandler{service: service, now: now}
}

// WithClock overrides the handler clock.
func (h *ReportHandler) WithClock(now func() time.Time) *ReportHandler {
	h.now = now
	return h
}

const dateLayout = "2006-01-02"

func (h *ReportHandler) parseFilter(c *gin.Context) domain.ReportFilter {
	now := h.now()
	today := now.Format(dateLayout)

	switch strings.ToLower(strings.TrimSpace(c.Query("range"))) {
	case "today":
		return domain.ReportFilter{Start: today, End: today}
	case "yesterday":
		y := now.AddDate(0, 0, -1).Format(dateLayout)
		return domain.ReportFilter{Start: y, End: y}
	case "week":
		return domain.ReportFilter{Start: now.AddDate(0, 0, -6).Format(dateLayout), End: today}
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
		return domain.ReportFilter{Start: monthStart, End: today}
	case "all":
		return domain.ReportFilter{}
	}

	filter := domain.ReportFilter{}
	if start := strings.TrimSpace(c.Query("start")); start != "" {
		if _, err := time.Parse(dateLayout, start); err == nil {
			filter.Start = start
		}
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		if _, err := time.Parse(dateLayout, end); err == nil {
			filter.End = end
		}
	}
	return filter
}

func (h *ReportHandler) GetOverview(c *gin.Context) {
	filter := h.parseFilter(c)
	overview, err := h.service.Overview(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *ReportHandler) GetTruthTable(c *gin.Context) {
	filter := h.parseFilter(c)
	table, err := h.service.TruthTable(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build truth table", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, table)
}

func (h *ReportHandler) GetWastageReport(c *gin.Context) {
	filter := h.parseFilter(c)
	report, err := h.service.WastageReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build wastage report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetRestockPlan(c *gin.Context) {
	plan, err := h.service.RestockPlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build restock plan", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *ReportHandler) GetLowStockTriage(c *gin.Context) {
	triage, err := h.service.LowStockTriage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build low stock triage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, triage)
}

func (h *ReportHandler) GetMovements(c *gin.Context) {
	filter := h.parseFilter(c)
	events, err := h.service.Movements(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch movements", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

func (h *ReportHandler) GetUsageRates(c *gin.Context) {
	rates, err := h.service.UsageRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute usage rates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
