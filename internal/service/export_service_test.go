package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"hospital_survey_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportService(t *testing.T) (*ExportService, *SurveyService) {
	t.Helper()
	db := newTestDB(t)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	surveySvc := NewSurveyService(surveyRepo, questionRepo, nil)
	return NewExportService(surveyRepo, surveySvc), surveySvc
}

func TestExportCSVLongFormat(t *testing.T) {
	export, survey := newExportService(t)

	_, err := survey.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "Maria Silva",
		AdmissionDate: "2025-01-01",
		DischargeDate: "2025-01-05",
		City:          "Curitiba",
		Ward:          "Clínica Médica",
		Responses: map[string]string{
			"q1_1": "Satisfeito(a)",
			"q4_1": "Sim",
		},
	})
	require.NoError(t, err)

	_, err = survey.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "João Souza",
		IsAnonymous:   true,
		AdmissionDate: "2025-02-01",
		DischargeDate: "2025-02-03",
		Responses:     map[string]string{"q2_1": "Neutro(a)"},
	})
	require.NoError(t, err)

	filename, data, err := export.ExportCSV()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "survey_responses_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Cabeçalho + uma linha por resposta, pesquisa mais recente primeiro
	require.Len(t, records, 4)
	assert.Equal(t, csvHeader, records[0])

	// Pesquisa anônima (mais recente) sai sem nome
	assert.Equal(t, "", records[1][2])
	assert.Equal(t, "1", records[1][3])
	assert.Equal(t, "q2_1", records[1][7])
	assert.Equal(t, "Neutro(a)", records[1][10])

	// Respostas da primeira pesquisa na ordem do catálogo
	assert.Equal(t, "Maria Silva", records[2][2])
	assert.Equal(t, "0", records[2][3])
	assert.Equal(t, "4.50", records[2][6])
	assert.Equal(t, "q1_1", records[2][7])
	assert.Equal(t, "Satisfeito(a)", records[2][10])
	assert.Equal(t, "4", records[2][11])

	assert.Equal(t, "q4_1", records[3][7])
	assert.Equal(t, "5", records[3][11])
}

func TestExportJSONNestedStructure(t *testing.T) {
	export, survey := newExportService(t)

	_, err := survey.SubmitSurvey(context.Background(), SubmitSurveyRequest{
		PatientName:   "Maria Silva",
		AdmissionDate: "2025-01-01",
		DischargeDate: "2025-01-05",
		Responses: map[string]string{
			"q1_1": "Muito satisfeito(a)",
			"q3_1": "Sim",
		},
	})
	require.NoError(t, err)

	filename, data, err := export.ExportJSON()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "surveys_export_"))
	assert.True(t, strings.HasSuffix(filename, ".json"))

	var payload []SurveyDetail
	require.NoError(t, json.Unmarshal(data, &payload))

	require.Len(t, payload, 1)
	detail := payload[0]
	require.NotNil(t, detail.Patient)
	assert.Equal(t, "Maria Silva", *detail.Patient)
	assert.Equal(t, 5.0, detail.SatisfactionScore)

	require.Len(t, detail.Sections, 2)
	assert.Equal(t, "Seção 1: Atendimento", detail.Sections[0].Title)
	assert.Equal(t, "Seção 3: Comunicação", detail.Sections[1].Title)
	require.Len(t, detail.Sections[0].Items, 1)
	assert.Equal(t, "q1_1", detail.Sections[0].Items[0].QuestionID)
	assert.Equal(t, "Muito satisfeito(a)", detail.Sections[0].Items[0].Answer)
}
