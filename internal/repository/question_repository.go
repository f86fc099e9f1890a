package repository

import (
	"hospital_survey_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// ListOrdered retorna o catálogo completo na ordem de exibição:
// seções, perguntas e opções ascendentes.
func (r *QuestionRepository) ListOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order asc")
		}).
		Order("section_order asc, question_order asc").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByQuestionID(questionID string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("question_id = ?", questionID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// FindOptionByText resolve a opção pelo texto exato dentro da pergunta.
func (r *QuestionRepository) FindOptionByText(questionPK uint, text string) (*model.QuestionOption, error) {
	var opt model.QuestionOption
	err := r.DB.Where("question_id = ? AND option_text = ?", questionPK, text).First(&opt).Error
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

type SectionRow struct {
	SectionTitle string
	SectionOrder int
}

// DistinctSections lista as seções do catálogo em ordem de exibição.
func (r *QuestionRepository) DistinctSections() ([]SectionRow, error) {
	var rows []SectionRow
	err := r.DB.Model(&model.Question{}).
		Select("section_title, section_order").
		Distinct().
		Order("section_order asc").
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}
