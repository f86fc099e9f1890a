package controller

import (
	"errors"
	"strconv"

	"hospital_survey_backend/internal/service"
	"hospital_survey_backend/internal/util"
	"hospital_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService  *service.SurveyService
	CatalogService *service.CatalogService
}

func NewSurveyController(surveySvc *service.SurveyService, catalogSvc *service.CatalogService) *SurveyController {
	return &SurveyController{
		SurveyService:  surveySvc,
		CatalogService: catalogSvc,
	}
}

// @Summary Obter catálogo de perguntas
// @Description Seções, perguntas e opções na ordem de exibição do formulário
// @Tags Pesquisa
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *SurveyController) GetQuestions(ctx *gin.Context) {
	sections, err := c.CatalogService.GetCatalog()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sections)
}

// @Summary Submeter pesquisa de satisfação
// @Tags Pesquisa
// @Accept json
// @Produce json
// @Param body body service.SubmitSurveyRequest true "Dados da pesquisa"
// @Success 201 {object} util.Response
// @Router /submit-survey [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	var req service.SubmitSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey, err := c.SurveyService.SubmitSurvey(ctx.Request.Context(), req)
	if err != nil {
		util.Error(ctx, 500, "Erro ao salvar pesquisa: "+err.Error())
		return
	}

	monitoring.SurveySubmissions.Inc()

	util.Created(ctx, gin.H{
		"message":  "Pesquisa enviada com sucesso!",
		"surveyId": survey.ID,
	})
}

// @Summary Detalhes de uma pesquisa
// @Description Pesquisa completa com respostas agrupadas por seção
// @Tags Painel
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da pesquisa"
// @Success 200 {object} util.Response
// @Router /surveys/{id} [get]
func (c *SurveyController) GetSurveyDetail(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}

	detail, err := c.SurveyService.GetSurveyDetail(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrSurveyNotFound) {
			util.NotFound(ctx, util.ErrSurveyNotFound.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}
