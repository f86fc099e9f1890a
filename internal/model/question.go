package model

type QuestionType string

const (
	SatisfactionScale QuestionType = "satisfaction_scale"
	YesNoPartial      QuestionType = "yes_no_partial"
	YesNo             QuestionType = "yes_no"
)

// Question é uma pergunta fixa do catálogo, identificada externamente
// pelo código estável QuestionID (q1_1, q1_2, ...).
// swagger:model Question
type Question struct {
	BaseModel
	QuestionID    string       `gorm:"size:10;uniqueIndex" json:"questionId"`
	SectionTitle  string       `gorm:"size:255" json:"sectionTitle"`
	QuestionText  string       `gorm:"type:text" json:"questionText"`
	QuestionType  QuestionType `gorm:"size:50" json:"questionType"`
	SectionOrder  int          `json:"sectionOrder"`
	QuestionOrder int          `json:"questionOrder"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID;references:ID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionOption é uma opção de resposta com valor numérico para o
// cálculo do score. O texto é a chave usada na submissão.
// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	QuestionID  uint   `gorm:"index;type:bigint unsigned" json:"-"`
	OptionText  string `gorm:"size:255" json:"optionText"`
	OptionValue int    `json:"optionValue"`
	OptionOrder int    `json:"optionOrder"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
