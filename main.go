// @title API de Pesquisa de Satisfação Hospitalar
// @version 1.0
// @description Backend do sistema de pesquisa de satisfação de pacientes do Hospital Santa Clara.

// @contact.name Suporte
// @contact.email suporte@hospitalsantaclara.org.br

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"hospital_survey_backend/internal/app"
	"hospital_survey_backend/internal/config"
	"hospital_survey_backend/pkg/logger"
	"log"
)

func main() {
	// Parâmetros de linha de comando
	migrateOnly := flag.Bool("migrate-only", false, "executa apenas a migração do banco e sai")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migração do banco concluída, encerrando")
		return
	}

	application.Run()
}
