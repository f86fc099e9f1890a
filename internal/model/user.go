package model

// User é um usuário administrativo do painel (diretoria).
// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

func (User) TableName() string {
	return "users"
}
