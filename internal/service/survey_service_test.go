package service

import (
	"context"
	"testing"

	"hospital_survey_backend/internal/repository"
	"hospital_survey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurveyService(t *testing.T) (*SurveyService, *repository.SurveyRepository) {
	t.Helper()
	db := newTestDB(t)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	return NewSurveyService(surveyRepo, questionRepo, nil), surveyRepo
}

func TestSubmitSurveyComputesMeanScore(t *testing.T) {
	svc, repo := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "Maria Silva",
		AdmissionDate: "2025-01-01",
		DischargeDate: "2025-01-05",
		Responses: map[string]string{
			"q1_1": "Muito satisfeito(a)", // 5
			"q1_2": "Não",                 // 1
			"q1_3": "Em parte",            // 3
		},
	})
	require.NoError(t, err)

	require.NotNil(t, survey.SatisfactionScore)
	assert.Equal(t, 3.0, *survey.SatisfactionScore)
	assert.True(t, survey.Completed)

	responses, err := repo.ResponsesOrdered(survey.ID)
	require.NoError(t, err)
	assert.Len(t, responses, 3)
}

func TestSubmitSurveySkipsUnresolvedEntries(t *testing.T) {
	svc, repo := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		AdmissionDate: "2025-02-01",
		DischargeDate: "2025-02-03",
		Responses: map[string]string{
			"q1_1": "Satisfeito(a)", // válida
			"q9_9": "Sim",           // pergunta inexistente
			"q1_2": "Talvez",        // opção inexistente
		},
	})
	require.NoError(t, err)

	responses, err := repo.ResponsesOrdered(survey.ID)
	require.NoError(t, err)
	assert.Len(t, responses, 1)

	require.NotNil(t, survey.SatisfactionScore)
	assert.Equal(t, 4.0, *survey.SatisfactionScore)
}

func TestSubmitSurveyWithoutAnswersScoresZero(t *testing.T) {
	svc, repo := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		AdmissionDate: "2025-03-01",
		DischargeDate: "2025-03-02",
	})
	require.NoError(t, err)

	require.NotNil(t, survey.SatisfactionScore)
	assert.Equal(t, 0.0, *survey.SatisfactionScore)

	responses, err := repo.ResponsesOrdered(survey.ID)
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestSubmitSurveyAnonymousDiscardsName(t *testing.T) {
	svc, repo := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "João Souza",
		IsAnonymous:   true,
		AdmissionDate: "2025-04-01",
		DischargeDate: "2025-04-04",
		Responses:     map[string]string{"q5_1": "Sim"},
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(survey.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PatientName)
	assert.True(t, stored.IsAnonymous)
}

func TestSubmitSurveyEndToEnd(t *testing.T) {
	db := newTestDB(t)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	svc := NewSurveyService(surveyRepo, questionRepo, nil)
	dashboard := NewDashboardService(surveyRepo, questionRepo, nil, 0)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		AdmissionDate: "2025-01-01",
		DischargeDate: "2025-01-02",
		Responses: map[string]string{
			"q1_1": "Satisfeito(a)", // 4
			"q4_1": "Sim",           // 5
		},
	})
	require.NoError(t, err)

	require.NotNil(t, survey.SatisfactionScore)
	assert.Equal(t, 4.5, *survey.SatisfactionScore)

	metrics, err := dashboard.GetOverallMetrics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.TotalSurveys)
	assert.Equal(t, 4.5, metrics.AvgSatisfaction)
}

func TestGetSurveyDetailGroupsBySection(t *testing.T) {
	svc, _ := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "Ana Lima",
		AdmissionDate: "2025-05-01",
		DischargeDate: "2025-05-06",
		City:          "Porto Alegre",
		Ward:          "Clínica Médica",
		Responses: map[string]string{
			"q1_2": "Sim",
			"q1_1": "Neutro(a)",
			"q3_1": "Em parte",
		},
	})
	require.NoError(t, err)

	detail, err := svc.GetSurveyDetail(survey.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.Patient)
	assert.Equal(t, "Ana Lima", *detail.Patient)
	assert.Equal(t, "Porto Alegre", detail.City)

	require.Len(t, detail.Sections, 2)
	assert.Equal(t, "Seção 1: Atendimento", detail.Sections[0].Title)
	assert.Equal(t, "Seção 3: Comunicação", detail.Sections[1].Title)

	// Dentro da seção, perguntas na ordem do catálogo
	require.Len(t, detail.Sections[0].Items, 2)
	assert.Equal(t, "q1_1", detail.Sections[0].Items[0].QuestionID)
	assert.Equal(t, "q1_2", detail.Sections[0].Items[1].QuestionID)
}

func TestGetSurveyDetailNotFound(t *testing.T) {
	svc, _ := newSurveyService(t)

	_, err := svc.GetSurveyDetail(9999)
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)
}

func TestGetSurveyDetailAnonymousHidesPatient(t *testing.T) {
	svc, _ := newSurveyService(t)

	survey, err := svc.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "Carlos Pereira",
		IsAnonymous:   true,
		AdmissionDate: "2025-06-01",
		DischargeDate: "2025-06-02",
		Responses:     map[string]string{"q1_1": "Satisfeito(a)"},
	})
	require.NoError(t, err)

	detail, err := svc.GetSurveyDetail(survey.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Patient)
	assert.True(t, detail.IsAnonymous)
}
