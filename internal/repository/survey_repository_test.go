package repository

import (
	"fmt"
	"os"
	"testing"

	"hospital_survey_backend/internal/model"
	"hospital_survey_backend/pkg/database"
	"hospital_survey_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedCatalog(db))

	return db
}

func catalogQuestion(t *testing.T, db *gorm.DB, questionID string) *model.Question {
	t.Helper()
	var q model.Question
	require.NoError(t, db.Where("question_id = ?", questionID).First(&q).Error)
	return &q
}

func newCompletedSurvey() *model.Survey {
	score := 4.0
	return &model.Survey{
		AdmissionDate:     "2025-01-01",
		DischargeDate:     "2025-01-02",
		Completed:         true,
		SatisfactionScore: &score,
	}
}

func TestCreateWithResponsesRollsBackOnDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	q := catalogQuestion(t, db, "q1_1")
	score := 5

	// A mesma pergunta duas vezes viola o índice único
	// (survey_id, question_id); nada pode ficar persistido.
	responses := []model.SurveyResponse{
		{QuestionID: q.ID, ResponseValue: "Muito satisfeito(a)", ResponseScore: &score},
		{QuestionID: q.ID, ResponseValue: "Satisfeito(a)", ResponseScore: &score},
	}

	err := repo.CreateWithResponses(newCompletedSurvey(), responses)
	require.Error(t, err)

	var surveys, rows int64
	require.NoError(t, db.Model(&model.Survey{}).Count(&surveys).Error)
	require.NoError(t, db.Model(&model.SurveyResponse{}).Count(&rows).Error)
	assert.Equal(t, int64(0), surveys)
	assert.Equal(t, int64(0), rows)
}

func TestDuplicateResponseRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	q := catalogQuestion(t, db, "q2_1")
	score := 3

	survey := newCompletedSurvey()
	require.NoError(t, repo.CreateWithResponses(survey, []model.SurveyResponse{
		{QuestionID: q.ID, ResponseValue: "Neutro(a)", ResponseScore: &score},
	}))

	dup := model.SurveyResponse{
		SurveyID:      survey.ID,
		QuestionID:    q.ID,
		ResponseValue: "Satisfeito(a)",
		ResponseScore: &score,
	}
	assert.Error(t, db.Create(&dup).Error)
}

func TestResponsesOrderedLoadsQuestions(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	q11 := catalogQuestion(t, db, "q1_1")
	q41 := catalogQuestion(t, db, "q4_1")
	four, five := 4, 5

	survey := newCompletedSurvey()
	require.NoError(t, repo.CreateWithResponses(survey, []model.SurveyResponse{
		{QuestionID: q41.ID, ResponseValue: "Sim", ResponseScore: &five},
		{QuestionID: q11.ID, ResponseValue: "Satisfeito(a)", ResponseScore: &four},
	}))

	responses, err := repo.ResponsesOrdered(survey.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	// A pergunta vem carregada e na ordem do catálogo
	require.NotNil(t, responses[0].Question)
	require.NotNil(t, responses[1].Question)
	assert.Equal(t, "q1_1", responses[0].Question.QuestionID)
	assert.Equal(t, "q4_1", responses[1].Question.QuestionID)
	assert.Equal(t, "Seção 1: Atendimento", responses[0].Question.SectionTitle)
}

func TestAverageScoreIgnoresIncomplete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	require.NoError(t, repo.CreateWithResponses(newCompletedSurvey(), nil))

	incomplete := newCompletedSurvey()
	incomplete.Completed = false
	two := 2.0
	incomplete.SatisfactionScore = &two
	require.NoError(t, db.Create(incomplete).Error)

	avg, err := repo.AverageScore()
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	count, err := repo.CountCompleted()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
