package controller

import (
	"hospital_survey_backend/internal/service"
	"hospital_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary Dados do painel de insights
// @Description Métricas gerais, médias por seção, tendência mensal e pesquisas recentes
// @Tags Painel
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dashboard-data [get]
func (c *DashboardController) GetDashboardData(ctx *gin.Context) {
	data, err := c.Service.GetDashboardData(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, data)
}
