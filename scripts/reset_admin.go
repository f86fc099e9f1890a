// Redefine a senha do usuário administrativo do painel.
//
// Útil quando a senha padrão foi trocada e perdida, ou após restaurar
// um backup do banco. Deve ser executado a partir da raiz do projeto
// para encontrar configs/config.yaml.
//
// Uso: go run scripts/reset_admin.go -password nova-senha

package main

import (
	"errors"
	"flag"
	"log"

	"hospital_survey_backend/internal/config"
	"hospital_survey_backend/internal/model"
	"hospital_survey_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "admin", "usuário a redefinir")
	password := flag.String("password", "", "nova senha")
	flag.Parse()

	if *password == "" {
		log.Fatal("informe a nova senha com -password")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("falha ao carregar configuração: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("falha ao conectar ao banco: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("falha ao gerar hash da senha: %v", err)
	}

	var user model.User
	err = db.Where("username = ?", *username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Username: *username,
			Password: string(hashed),
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("falha ao criar usuário: %v", err)
		}
		log.Printf("usuário %s criado", *username)
	case err != nil:
		log.Fatalf("falha ao buscar usuário: %v", err)
	default:
		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":  string(hashed),
			"is_active": true,
		}).Error; err != nil {
			log.Fatalf("falha ao atualizar senha: %v", err)
		}
		log.Printf("senha do usuário %s redefinida", *username)
	}
}
