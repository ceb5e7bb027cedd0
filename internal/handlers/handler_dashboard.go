package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/finly-app/finly_backend/internal/apperrors"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard view.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.getDashboard)
}

func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	displayCurrency := strings.ToUpper(c.Query("displayCurrency"))
	if displayCurrency != "" && len(displayCurrency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "displayCurrency must be a 3-letter code"})
		return
	}

	logger = logger.With(slog.String("user_id", userID))

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, from, to, displayCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnavailable) {
			logger.Error("Dashboard dependencies unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Dashboard is temporarily unavailable"})
		} else {
			logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		}
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
