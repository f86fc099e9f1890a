package repository

import (
	"database/sql"
	"time"

	"hospital_survey_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

// CreateWithResponses persiste a pesquisa e todas as respostas em uma
// única transação. Qualquer falha desfaz tudo, inclusive violação do
// índice único (survey_id, question_id).
func (r *SurveyRepository) CreateWithResponses(survey *model.Survey, responses []model.SurveyResponse) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(survey).Error; err != nil {
			return err
		}
		for i := range responses {
			responses[i].SurveyID = survey.ID
			if err := tx.Create(&responses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) FindByID(id uint) (*model.Survey, error) {
	var s model.Survey
	err := r.DB.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ResponsesOrdered retorna as respostas de uma pesquisa na ordem do
// catálogo, com a pergunta carregada.
func (r *SurveyRepository) ResponsesOrdered(surveyID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.DB.
		Joins("JOIN questions ON questions.id = survey_responses.question_id").
		Where("survey_responses.survey_id = ?", surveyID).
		Order("questions.section_order asc, questions.question_order asc").
		Preload("Question").
		Find(&responses).Error
	return responses, err
}

func (r *SurveyRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Survey{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}

// AverageScore é a média dos scores não nulos das pesquisas concluídas;
// 0 quando não há nenhuma.
func (r *SurveyRepository) AverageScore() (float64, error) {
	var avg sql.NullFloat64
	err := r.DB.Model(&model.Survey{}).
		Where("completed = ? AND satisfaction_score IS NOT NULL", true).
		Select("AVG(satisfaction_score)").
		Row().Scan(&avg)
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

type SectionScoreRow struct {
	SectionTitle string
	SectionOrder int
	Average      float64
}

// SectionAverages agrupa a média de response_score por seção do
// catálogo. Seções sem respostas não aparecem aqui; o serviço as
// preenche com 0.
func (r *SurveyRepository) SectionAverages() ([]SectionScoreRow, error) {
	var rows []SectionScoreRow
	err := r.DB.Model(&model.SurveyResponse{}).
		Select("questions.section_title as section_title, questions.section_order as section_order, AVG(survey_responses.response_score) as average").
		Joins("JOIN questions ON questions.id = survey_responses.question_id").
		Where("survey_responses.response_score IS NOT NULL").
		Group("questions.section_title, questions.section_order").
		Order("questions.section_order asc").
		Scan(&rows).Error
	return rows, err
}

func (r *SurveyRepository) RecentCompleted(limit int) ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.DB.Where("completed = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&surveys).Error
	return surveys, err
}

// CompletedSince retorna as pesquisas concluídas a partir do instante
// informado, para a agregação mensal.
func (r *SurveyRepository) CompletedSince(from time.Time) ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.DB.Where("completed = ? AND created_at >= ?", true, from).
		Order("created_at asc").
		Find(&surveys).Error
	return surveys, err
}

func (r *SurveyRepository) ListCompleted() ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.DB.Where("completed = ?", true).
		Order("created_at desc").
		Find(&surveys).Error
	return surveys, err
}

type ExportRow struct {
	SurveyID          uint
	CreatedAt         time.Time
	PatientName       *string
	IsAnonymous       bool
	City              string
	Ward              string
	SatisfactionScore *float64
	QuestionID        string
	SectionTitle      string
	QuestionText      string
	ResponseValue     string
	ResponseScore     *int
}

// ExportRows produz o formato longo (uma linha por resposta) com os
// joins de pesquisa e pergunta, na ordem do export CSV.
func (r *SurveyRepository) ExportRows() ([]ExportRow, error) {
	var rows []ExportRow
	err := r.DB.Model(&model.SurveyResponse{}).
		Select(`surveys.id as survey_id,
			surveys.created_at as created_at,
			surveys.patient_name as patient_name,
			surveys.is_anonymous as is_anonymous,
			surveys.city as city,
			surveys.ward as ward,
			surveys.satisfaction_score as satisfaction_score,
			questions.question_id as question_id,
			questions.section_title as section_title,
			questions.question_text as question_text,
			survey_responses.response_value as response_value,
			survey_responses.response_score as response_score`).
		Joins("JOIN surveys ON surveys.id = survey_responses.survey_id").
		Joins("JOIN questions ON questions.id = survey_responses.question_id").
		Order("surveys.created_at desc, surveys.id asc, questions.section_order asc, questions.question_order asc").
		Scan(&rows).Error
	return rows, err
}
