package controller

import (
	"fmt"

	"hospital_survey_backend/internal/service"
	"hospital_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Service *service.ExportService
}

func NewExportController(svc *service.ExportService) *ExportController {
	return &ExportController{Service: svc}
}

// @Summary Exportar respostas em CSV
// @Description Formato longo: uma linha por resposta
// @Tags Exportação
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "arquivo CSV"
// @Router /export-csv [get]
func (c *ExportController) ExportCSV(ctx *gin.Context) {
	filename, data, err := c.Service.ExportCSV()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(200, "text/csv", data)
}

// @Summary Exportar pesquisas em JSON
// @Description Estrutura aninhada por pesquisa concluída
// @Tags Exportação
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {string} string "arquivo JSON"
// @Router /export-json [get]
func (c *ExportController) ExportJSON(ctx *gin.Context) {
	filename, data, err := c.Service.ExportJSON()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(200, "application/json; charset=utf-8", data)
}
