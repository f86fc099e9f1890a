package model

// SurveyResponse é a resposta resolvida de uma pergunta dentro de uma
// pesquisa. O índice único garante no máximo uma resposta por pergunta
// em cada pesquisa.
// swagger:model SurveyResponse
type SurveyResponse struct {
	BaseModel
	SurveyID      uint   `gorm:"uniqueIndex:idx_survey_question;type:bigint unsigned" json:"surveyId"`
	QuestionID    uint   `gorm:"uniqueIndex:idx_survey_question;type:bigint unsigned" json:"questionId"`
	ResponseValue string `gorm:"size:255" json:"responseValue"`
	ResponseScore *int   `json:"responseScore,omitempty"`

	// references:ID é obrigatório: Question também tem um campo chamado
	// QuestionID (o código externo) e sem ele o GORM associa pela coluna
	// errada.
	Question *Question `gorm:"foreignKey:QuestionID;references:ID" json:"question,omitempty"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}
