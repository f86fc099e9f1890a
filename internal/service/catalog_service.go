package service

import (
	"hospital_survey_backend/internal/model"
	"hospital_survey_backend/internal/repository"
)

type CatalogService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewCatalogService(questionRepo *repository.QuestionRepository) *CatalogService {
	return &CatalogService{QuestionRepo: questionRepo}
}

// CatalogQuestion é a projeção da pergunta para o formulário do
// paciente: apenas os textos das opções, sem os valores numéricos.
type CatalogQuestion struct {
	ID      string             `json:"id"`
	Text    string             `json:"text"`
	Type    model.QuestionType `json:"type"`
	Options []string           `json:"options"`
}

type CatalogSection struct {
	Title     string            `json:"title"`
	Questions []CatalogQuestion `json:"questions"`
}

// GetCatalog retorna as seções na ordem fixa do catálogo, com perguntas
// e opções também ordenadas.
func (s *CatalogService) GetCatalog() ([]CatalogSection, error) {
	questions, err := s.QuestionRepo.ListOrdered()
	if err != nil {
		return nil, err
	}

	var sections []CatalogSection
	indexByTitle := make(map[string]int)

	for _, q := range questions {
		idx, ok := indexByTitle[q.SectionTitle]
		if !ok {
			sections = append(sections, CatalogSection{Title: q.SectionTitle})
			idx = len(sections) - 1
			indexByTitle[q.SectionTitle] = idx
		}

		options := make([]string, len(q.Options))
		for i, opt := range q.Options {
			options[i] = opt.OptionText
		}

		sections[idx].Questions = append(sections[idx].Questions, CatalogQuestion{
			ID:      q.QuestionID,
			Text:    q.QuestionText,
			Type:    q.QuestionType,
			Options: options,
		})
	}

	return sections, nil
}
