package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-crm/internal/httpresp"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/barber-crm/internal/usecase/dashboard"
)

type DashboardHandler struct {
	statsUC   *ucDashboard.DashboardStats
	monthlyUC *ucDashboard.MonthlyStats
}

func NewDashboardHandler(
	statsUC *ucDashboard.DashboardStats,
	monthlyUC *ucDashboard.MonthlyStats,
) *DashboardHandler {
	return &DashboardHandler{
		statsUC:   statsUC,
		monthlyUC: monthlyUC,
	}
}

// O agregador degrada subconsultas com falha para os defaults; estas
// rotas nunca respondem erro.

func (h *DashboardHandler) Stats(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	httpresp.OK(c, h.statsUC.Execute(c.Request.Context(), ownerID))
}

func (h *DashboardHandler) Monthly(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	httpresp.OK(c, h.monthlyUC.Execute(c.Request.Context(), ownerID))
}
