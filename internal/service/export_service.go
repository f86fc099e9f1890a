package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"hospital_survey_backend/internal/repository"
)

type ExportService struct {
	SurveyRepo *repository.SurveyRepository
	SurveySvc  *SurveyService
}

func NewExportService(surveyRepo *repository.SurveyRepository, surveySvc *SurveyService) *ExportService {
	return &ExportService{
		SurveyRepo: surveyRepo,
		SurveySvc:  surveySvc,
	}
}

var csvHeader = []string{
	"survey_id",
	"created_at",
	"patient",
	"is_anonymous",
	"city",
	"ward",
	"satisfaction_score",
	"question_id",
	"section_title",
	"question_text",
	"response_value",
	"response_score",
}

// ExportCSV gera o formato longo: uma linha por resposta, com os dados
// da pesquisa repetidos. Nome do paciente é omitido quando anônimo.
func (s *ExportService) ExportCSV() (string, []byte, error) {
	rows, err := s.SurveyRepo.ExportRows()
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return "", nil, err
	}

	for _, row := range rows {
		patient := ""
		if !row.IsAnonymous && row.PatientName != nil {
			patient = *row.PatientName
		}

		anonymous := "0"
		if row.IsAnonymous {
			anonymous = "1"
		}

		score := ""
		if row.SatisfactionScore != nil {
			score = fmt.Sprintf("%.2f", *row.SatisfactionScore)
		}

		responseScore := ""
		if row.ResponseScore != nil {
			responseScore = strconv.Itoa(*row.ResponseScore)
		}

		record := []string{
			strconv.FormatUint(uint64(row.SurveyID), 10),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			patient,
			anonymous,
			row.City,
			row.Ward,
			score,
			row.QuestionID,
			row.SectionTitle,
			row.QuestionText,
			row.ResponseValue,
			responseScore,
		}
		if err := writer.Write(record); err != nil {
			return "", nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("survey_responses_%s.csv", time.Now().UTC().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}

// ExportJSON gera a estrutura aninhada por pesquisa, com as respostas
// agrupadas por seção, cobrindo todas as pesquisas concluídas.
func (s *ExportService) ExportJSON() (string, []byte, error) {
	surveys, err := s.SurveyRepo.ListCompleted()
	if err != nil {
		return "", nil, err
	}

	payload := make([]*SurveyDetail, 0, len(surveys))
	for _, survey := range surveys {
		detail, err := s.SurveySvc.GetSurveyDetail(survey.ID)
		if err != nil {
			return "", nil, err
		}
		payload = append(payload, detail)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("surveys_export_%s.json", time.Now().UTC().Format("20060102_150405"))
	return filename, data, nil
}
