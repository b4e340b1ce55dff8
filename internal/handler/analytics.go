package handler

import (
	"net/http"
	"strconv"

	"qrlink/internal/model"
	"qrlink/internal/service"
	"qrlink/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles analytics and dashboard endpoints
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
	accountService   service.AccountServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(
	analyticsService service.AnalyticsServiceInterface,
	accountService service.AccountServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		accountService:   accountService,
	}
}

// LinkAnalytics handles GET /api/v1/links/:id/analytics
// @Summary Analytics for one owned link
// @Tags analytics
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} Response{data=model.LinkAnalytics}
// @Router /api/v1/links/{id}/analytics [get]
func (h *AnalyticsHandler) LinkAnalytics(c *gin.Context) {
	ownerID, linkID, ok2 := h.gatedParams(c, service.RequireAnalytics)
	if !ok2 {
		return
	}

	analytics, err := h.analyticsService.LinkAnalytics(c.Request.Context(), linkID, ownerID)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, analytics)
}

// Export handles GET /api/v1/links/:id/export
// @Summary Export the archived scan history of one owned link
// @Tags analytics
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} Response{data=[]model.ScanArchiveEntry}
// @Router /api/v1/links/{id}/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	ownerID, linkID, ok2 := h.gatedParams(c, service.RequireExport)
	if !ok2 {
		return
	}

	entries, err := h.analyticsService.Export(c.Request.Context(), linkID, ownerID)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, entries)
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Aggregated analytics across all owned links
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=model.Dashboard}
// @Router /api/v1/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ownerID, authed := middleware.AccountID(c)
	if !authed {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if !h.entitled(c, ownerID, service.RequireAnalytics) {
		return
	}

	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), ownerID)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, dashboard)
}

// gatedParams resolves auth, the link ID path param and the plan gate,
// writing the error response itself on failure
func (h *AnalyticsHandler) gatedParams(c *gin.Context, gate func(owner *model.Account) error) (string, int64, bool) {
	ownerID, authed := middleware.AccountID(c)
	if !authed {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return "", 0, false
	}

	linkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid link id")
		return "", 0, false
	}

	if !h.entitled(c, ownerID, gate) {
		return "", 0, false
	}

	return ownerID, linkID, true
}

func (h *AnalyticsHandler) entitled(c *gin.Context, ownerID string, gate func(owner *model.Account) error) bool {
	owner, err := h.accountService.GetAccount(c.Request.Context(), ownerID)
	if err != nil {
		failFromError(c, err)
		return false
	}
	if err := gate(owner); err != nil {
		failFromError(c, err)
		return false
	}
	return true
}
