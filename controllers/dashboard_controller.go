package controllers

import (
	"github.com/smartZeee/worker-side/pkg/resp"
	"github.com/smartZeee/worker-side/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GET /admin/dashboard ?period=daily|weekly|monthly|yearly|all
func (ctl *DashboardController) Summary(c *gin.Context) {
	period := services.ParsePeriod(c.DefaultQuery("period", "all"))

	summary, err := ctl.Dashboard.Summary(period)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}
