package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"hospital_survey_backend/internal/repository"
	"hospital_survey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheKey = "hospital_survey:dashboard"

type DashboardService struct {
	SurveyRepo   *repository.SurveyRepository
	QuestionRepo *repository.QuestionRepository
	rdb          *redis.Client
	cacheTTL     time.Duration
}

func NewDashboardService(surveyRepo *repository.SurveyRepository, questionRepo *repository.QuestionRepository, rdb *redis.Client, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{
		SurveyRepo:   surveyRepo,
		QuestionRepo: questionRepo,
		rdb:          rdb,
		cacheTTL:     cacheTTL,
	}
}

// SetCacheTTL é chamado no reload de configuração.
func (s *DashboardService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

type OverallMetrics struct {
	TotalSurveys    int64   `json:"totalSurveys"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
}

type MonthlyPoint struct {
	Month   string  `json:"month"` // AAAA-MM
	Average float64 `json:"average"`
}

type RecentSurvey struct {
	ID           uint    `json:"id"`
	Patient      string  `json:"patient"`
	Date         string  `json:"date"`
	Score        float64 `json:"score"`
	Observations string  `json:"observations"`
	City         string  `json:"city"`
	Ward         string  `json:"ward"`
}

type DashboardData struct {
	TotalSurveys    int64              `json:"totalSurveys"`
	AvgSatisfaction float64            `json:"avgSatisfaction"`
	SectionScores   map[string]float64 `json:"sectionScores"`
	MonthlyTrend    []MonthlyPoint     `json:"monthlyTrend"`
	RecentSurveys   []RecentSurvey     `json:"recentSurveys"`
}

// GetOverallMetrics retorna o total de pesquisas concluídas e a média
// geral de satisfação (0 quando não há pesquisas).
func (s *DashboardService) GetOverallMetrics() (*OverallMetrics, error) {
	total, err := s.SurveyRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	avg, err := s.SurveyRepo.AverageScore()
	if err != nil {
		return nil, err
	}

	return &OverallMetrics{
		TotalSurveys:    total,
		AvgSatisfaction: round(avg, 2),
	}, nil
}

// GetSectionScores calcula a média de score por seção do catálogo.
// Seções sem respostas qualificadas aparecem com 0.
func (s *DashboardService) GetSectionScores() (map[string]float64, error) {
	sections, err := s.QuestionRepo.DistinctSections()
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(sections))
	for _, section := range sections {
		scores[section.SectionTitle] = 0
	}

	rows, err := s.SurveyRepo.SectionAverages()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		scores[row.SectionTitle] = round(row.Average, 2)
	}

	return scores, nil
}

// GetMonthlyTrend agrega a média de satisfação por mês nos últimos 12
// meses, incluindo o mês corrente. Meses sem pesquisas ficam com 0.
// O agrupamento é feito em memória para funcionar igual em MySQL e
// SQLite.
func (s *DashboardService) GetMonthlyTrend() ([]MonthlyPoint, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	surveys, err := s.SurveyRepo.CompletedSince(start)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, survey := range surveys {
		if survey.SatisfactionScore == nil {
			continue
		}
		month := survey.CreatedAt.Format("2006-01")
		sums[month] += *survey.SatisfactionScore
		counts[month]++
	}

	trend := make([]MonthlyPoint, 0, 12)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		point := MonthlyPoint{Month: month}
		if counts[month] > 0 {
			point.Average = round(sums[month]/float64(counts[month]), 1)
		}
		trend = append(trend, point)
	}

	return trend, nil
}

// GetRecentSurveys lista as pesquisas concluídas mais recentes, da mais
// nova para a mais antiga.
func (s *DashboardService) GetRecentSurveys(limit int) ([]RecentSurvey, error) {
	surveys, err := s.SurveyRepo.RecentCompleted(limit)
	if err != nil {
		return nil, err
	}

	recent := make([]RecentSurvey, len(surveys))
	for i, survey := range surveys {
		patient := "Anônimo"
		if !survey.IsAnonymous && survey.PatientName != nil {
			patient = *survey.PatientName
		}

		score := 0.0
		if survey.SatisfactionScore != nil {
			score = round(*survey.SatisfactionScore, 1)
		}

		recent[i] = RecentSurvey{
			ID:           survey.ID,
			Patient:      patient,
			Date:         survey.CreatedAt.Format("2006-01-02"),
			Score:        score,
			Observations: survey.Observations,
			City:         survey.City,
			Ward:         survey.Ward,
		}
	}

	return recent, nil
}

// GetDashboardData monta o payload completo do painel, com cache curto
// em Redis quando disponível. Uma leitura pode não refletir uma
// submissão feita há instantes; o cache é invalidado a cada submissão.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var data DashboardData
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return &data, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("Dashboard cache read failed", zap.Error(err))
		}
	}

	overall, err := s.GetOverallMetrics()
	if err != nil {
		return nil, err
	}

	sectionScores, err := s.GetSectionScores()
	if err != nil {
		return nil, err
	}

	trend, err := s.GetMonthlyTrend()
	if err != nil {
		return nil, err
	}

	recent, err := s.GetRecentSurveys(5)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		TotalSurveys:    overall.TotalSurveys,
		AvgSatisfaction: overall.AvgSatisfaction,
		SectionScores:   sectionScores,
		MonthlyTrend:    trend,
		RecentSurveys:   recent,
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if payload, err := json.Marshal(data); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				logger.Log.Warn("Dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return data, nil
}

func round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
