package service

import (
	"context"
	"errors"
	"time"

	"hospital_survey_backend/internal/model"
	"hospital_survey_backend/internal/repository"
	"hospital_survey_backend/internal/util"
	"hospital_survey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SurveyService struct {
	SurveyRepo   *repository.SurveyRepository
	QuestionRepo *repository.QuestionRepository
	rdb          *redis.Client
}

func NewSurveyService(surveyRepo *repository.SurveyRepository, questionRepo *repository.QuestionRepository, rdb *redis.Client) *SurveyService {
	return &SurveyService{
		SurveyRepo:   surveyRepo,
		QuestionRepo: questionRepo,
		rdb:          rdb,
	}
}

type SubmitSurveyRequest struct {
	PatientName   string            `json:"patientName"`
	IsAnonymous   bool              `json:"isAnonymous"`
	AdmissionDate string            `json:"admissionDate" binding:"required"`
	DischargeDate string            `json:"dischargeDate" binding:"required"`
	Observations  string            `json:"observations"`
	City          string            `json:"city"`
	Ward          string            `json:"ward"`
	Responses     map[string]string `json:"responses"`
}

// SubmitSurvey resolve cada resposta contra o catálogo, calcula o score
// médio e persiste tudo em uma transação. Entradas com pergunta ou
// opção desconhecida são ignoradas silenciosamente: uma submissão
// parcial ou malformada ainda é registrada.
func (s *SurveyService) SubmitSurvey(ctx context.Context, req SubmitSurveyRequest) (*model.Survey, error) {
	var responses []model.SurveyResponse
	totalScore := 0

	for questionID, answerText := range req.Responses {
		question, err := s.QuestionRepo.FindByQuestionID(questionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		option, err := s.QuestionRepo.FindOptionByText(question.ID, answerText)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		score := option.OptionValue
		totalScore += score
		responses = append(responses, model.SurveyResponse{
			QuestionID:    question.ID,
			ResponseValue: answerText,
			ResponseScore: &score,
		})
	}

	// Score médio; 0 quando nenhuma resposta resolveu (comportamento
	// histórico, mantido por compatibilidade com os dados existentes).
	satisfactionScore := 0.0
	if len(responses) > 0 {
		satisfactionScore = float64(totalScore) / float64(len(responses))
	}

	var patientName *string
	if !req.IsAnonymous && req.PatientName != "" {
		patientName = &req.PatientName
	}

	survey := &model.Survey{
		PatientName:       patientName,
		IsAnonymous:       req.IsAnonymous,
		AdmissionDate:     req.AdmissionDate,
		DischargeDate:     req.DischargeDate,
		Observations:      req.Observations,
		City:              req.City,
		Ward:              req.Ward,
		Completed:         true,
		SatisfactionScore: &satisfactionScore,
	}

	if err := s.SurveyRepo.CreateWithResponses(survey, responses); err != nil {
		return nil, err
	}

	s.invalidateDashboardCache(ctx)

	return survey, nil
}

func (s *SurveyService) invalidateDashboardCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}
}

type SurveyDetailItem struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      *int   `json:"score"`
}

type SurveyDetailSection struct {
	Title string             `json:"title"`
	Items []SurveyDetailItem `json:"items"`
}

type SurveyDetail struct {
	ID                uint                  `json:"id"`
	Patient           *string               `json:"patient"`
	IsAnonymous       bool                  `json:"isAnonymous"`
	AdmissionDate     string                `json:"admissionDate"`
	DischargeDate     string                `json:"dischargeDate"`
	City              string                `json:"city"`
	Ward              string                `json:"ward"`
	Observations      string                `json:"observations"`
	CreatedAt         time.Time             `json:"createdAt"`
	SatisfactionScore float64               `json:"satisfactionScore"`
	Sections          []SurveyDetailSection `json:"sections"`
}

// GetSurveyDetail monta a pesquisa completa com as respostas agrupadas
// por seção, na ordem do catálogo.
func (s *SurveyService) GetSurveyDetail(id uint) (*SurveyDetail, error) {
	survey, err := s.SurveyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSurveyNotFound
		}
		return nil, err
	}

	responses, err := s.SurveyRepo.ResponsesOrdered(survey.ID)
	if err != nil {
		return nil, err
	}

	detail := &SurveyDetail{
		ID:            survey.ID,
		IsAnonymous:   survey.IsAnonymous,
		AdmissionDate: survey.AdmissionDate,
		DischargeDate: survey.DischargeDate,
		City:          survey.City,
		Ward:          survey.Ward,
		Observations:  survey.Observations,
		CreatedAt:     survey.CreatedAt,
	}
	if !survey.IsAnonymous {
		name := ""
		if survey.PatientName != nil {
			name = *survey.PatientName
		}
		detail.Patient = &name
	}
	if survey.SatisfactionScore != nil {
		detail.SatisfactionScore = *survey.SatisfactionScore
	}

	indexByTitle := make(map[string]int)
	for _, resp := range responses {
		if resp.Question == nil {
			continue
		}
		title := resp.Question.SectionTitle
		idx, ok := indexByTitle[title]
		if !ok {
			detail.Sections = append(detail.Sections, SurveyDetailSection{Title: title})
			idx = len(detail.Sections) - 1
			indexByTitle[title] = idx
		}
		detail.Sections[idx].Items = append(detail.Sections[idx].Items, SurveyDetailItem{
			QuestionID: resp.Question.QuestionID,
			Question:   resp.Question.QuestionText,
			Answer:     resp.ResponseValue,
			Score:      resp.ResponseScore,
		})
	}

	return detail, nil
}
