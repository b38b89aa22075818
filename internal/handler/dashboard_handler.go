package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techinvoice/internal/service"
)

// DashboardHandler handles the reporting summary endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles GET /api/v1/dashboard?from=&to=
//
// from and to are RFC 3339 dates bounding the reporting window; to is
// exclusive. When omitted the window is the trailing 30 days.
func (h *DashboardHandler) Summary(c *gin.Context) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from date; use RFC 3339 or YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to date; use RFC 3339 or YYYY-MM-DD")
			return
		}
		to = parsed
	}
	if !to.After(from) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be after from")
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
