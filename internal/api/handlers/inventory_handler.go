package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iscsys/backend-go/internal/repository/postgres"
	"github.com/iscsys/backend-go/internal/service"
)

type InventoryHandler struct {
	service *service.ReportService
}

func NewInventoryHandler(service *service.ReportService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.service.Item(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetItemActivity returns the per-item drilldown: totals, the trailing
// 30-day daily series and the loss attribution.
func (h *InventoryHandler) GetItemActivity(c *gin.Context) {
	activity, err := h.service.ItemActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build item activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}
