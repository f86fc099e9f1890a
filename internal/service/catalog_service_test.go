package service

import (
	"testing"

	"hospital_survey_backend/internal/model"
	"hospital_survey_backend/internal/repository"
	"hospital_survey_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogShapeAndOrdering(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(repository.NewQuestionRepository(db))

	sections, err := catalog.GetCatalog()
	require.NoError(t, err)

	require.Len(t, sections, 5)
	assert.Equal(t, "Seção 1: Atendimento", sections[0].Title)
	assert.Equal(t, "Seção 5: Recomendação", sections[4].Title)

	// Seção 1: duas perguntas de escala e uma sim/não/em parte
	first := sections[0]
	require.Len(t, first.Questions, 3)
	assert.Equal(t, "q1_1", first.Questions[0].ID)
	assert.Equal(t, "q1_2", first.Questions[1].ID)
	assert.Equal(t, "q1_3", first.Questions[2].ID)

	assert.Equal(t, model.SatisfactionScale, first.Questions[0].Type)
	assert.Equal(t, []string{
		"Muito satisfeito(a)",
		"Satisfeito(a)",
		"Neutro(a)",
		"Insatisfeito(a)",
		"Muito insatisfeito(a)",
	}, first.Questions[0].Options)

	assert.Equal(t, model.YesNoPartial, first.Questions[1].Type)
	assert.Equal(t, []string{"Sim", "Não", "Em parte"}, first.Questions[1].Options)

	// Seção 4 tem a única pergunta binária do catálogo
	require.Len(t, sections[3].Questions, 2)
	assert.Equal(t, "q4_1", sections[3].Questions[0].ID)
	assert.Equal(t, model.YesNo, sections[3].Questions[0].Type)
	assert.Equal(t, []string{"Sim", "Não"}, sections[3].Questions[0].Options)

	last := sections[4]
	require.Len(t, last.Questions, 1)
	assert.Equal(t, "q5_1", last.Questions[0].ID)
	assert.Equal(t, model.YesNoPartial, last.Questions[0].Type)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// newTestDB já semeia; semear de novo não pode duplicar
	require.NoError(t, database.SeedCatalog(db))
	require.NoError(t, database.SeedCatalog(db))

	var questions, options int64
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&model.QuestionOption{}).Count(&options).Error)

	assert.Equal(t, int64(10), questions)
	assert.Equal(t, int64(33), options)
}
