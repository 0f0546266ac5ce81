package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/services"
)

// OverviewHandler serves the landing page and the audit feed.
type OverviewHandler struct {
	overview *services.OverviewService
	audit    *services.NotificationService
}

func NewOverviewHandler(overview *services.OverviewService, audit *services.NotificationService) *OverviewHandler {
	return &OverviewHandler{overview: overview, audit: audit}
}

// Overview handles GET /api/overview
func (h *OverviewHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.overview.Overview(c.Request.Context()))
}

// Audit handles GET /api/audit
func (h *OverviewHandler) Audit(c *gin.Context) {
	events := h.audit.Recent()
	c.JSON(http.StatusOK, gin.H{"events": events, "total": len(events)})
}
