package model

// Survey é uma pesquisa respondida por um paciente. Criada já no estado
// concluído; rascunhos existem apenas no lado do cliente e nunca são
// persistidos.
// swagger:model Survey
type Survey struct {
	BaseModel
	PatientName       *string  `gorm:"size:255" json:"patientName,omitempty"` // nulo quando anônimo
	IsAnonymous       bool     `gorm:"default:false" json:"isAnonymous"`
	AdmissionDate     string   `gorm:"size:50" json:"admissionDate"`
	DischargeDate     string   `gorm:"size:50" json:"dischargeDate"`
	Observations      string   `gorm:"type:text" json:"observations,omitempty"`
	City              string   `gorm:"size:255" json:"city,omitempty"`
	Ward              string   `gorm:"size:100" json:"ward,omitempty"`
	Completed         bool     `gorm:"default:false" json:"completed"`
	SatisfactionScore *float64 `json:"satisfactionScore,omitempty"`

	Responses []SurveyResponse `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"responses,omitempty"`
}

func (Survey) TableName() string {
	return "surveys"
}
