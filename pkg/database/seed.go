package database

import (
	"hospital_survey_backend/internal/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedOption struct {
	text  string
	value int
}

type seedQuestion struct {
	id      string
	text    string
	qtype   model.QuestionType
	options []seedOption
}

type seedSection struct {
	title     string
	questions []seedQuestion
}

var scaleOptions = []seedOption{
	{"Muito satisfeito(a)", 5},
	{"Satisfeito(a)", 4},
	{"Neutro(a)", 3},
	{"Insatisfeito(a)", 2},
	{"Muito insatisfeito(a)", 1},
}

var yesNoPartialOptions = []seedOption{
	{"Sim", 5},
	{"Não", 1},
	{"Em parte", 3},
}

var yesNoOptions = []seedOption{
	{"Sim", 5},
	{"Não", 1},
}

// catalogSections é o catálogo fixo da pesquisa: 5 seções na ordem de
// exibição, perguntas e opções também ordenadas.
var catalogSections = []seedSection{
	{
		title: "Seção 1: Atendimento",
		questions: []seedQuestion{
			{
				id:      "q1_1",
				text:    "1. Como você avaliaria a qualidade do atendimento recebido no hospital?",
				qtype:   model.SatisfactionScale,
				options: scaleOptions,
			},
			{
				id:      "q1_2",
				text:    "2. Os profissionais de saúde foram atenciosos e respeitosos com você?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
			{
				id:      "q1_3",
				text:    "3. Você sentiu que suas necessidades foram atendidas de forma eficaz?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
		},
	},
	{
		title: "Seção 2: Instalações e recursos",
		questions: []seedQuestion{
			{
				id:      "q2_1",
				text:    "1. Como você avaliaria as instalações do hospital (limpeza, conforto, etc.)?",
				qtype:   model.SatisfactionScale,
				options: scaleOptions,
			},
			{
				id:      "q2_2",
				text:    "2. Os equipamentos e recursos disponíveis no hospital foram suficientes para o seu tratamento?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
		},
	},
	{
		title: "Seção 3: Comunicação",
		questions: []seedQuestion{
			{
				id:      "q3_1",
				text:    "1. Você sentiu que os profissionais de saúde explicaram claramente o seu diagnóstico e tratamento?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
			{
				id:      "q3_2",
				text:    "2. Você foi informado sobre os seus direitos e responsabilidades como paciente?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
		},
	},
	{
		title: "Seção 4: Filantropia e apoio",
		questions: []seedQuestion{
			{
				id:      "q4_1",
				text:    "1. Você sabe que o hospital é filantrópico e que sua missão é ajudar aqueles que não têm recursos?",
				qtype:   model.YesNo,
				options: yesNoOptions,
			},
			{
				id:      "q4_2",
				text:    "2. Você sente que o hospital está fazendo uma diferença positiva na comunidade?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
		},
	},
	{
		title: "Seção 5: Recomendação",
		questions: []seedQuestion{
			{
				id:      "q5_1",
				text:    "1. Você recomendaria este hospital para amigos e familiares?",
				qtype:   model.YesNoPartial,
				options: yesNoPartialOptions,
			},
		},
	},
}

// SeedCatalog insere o catálogo fixo de perguntas. Idempotente: não faz
// nada se já existirem perguntas; para recriar o catálogo é preciso
// limpar as tabelas antes.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for sectionOrder, section := range catalogSections {
			for questionOrder, q := range section.questions {
				question := model.Question{
					QuestionID:    q.id,
					SectionTitle:  section.title,
					QuestionText:  q.text,
					QuestionType:  q.qtype,
					SectionOrder:  sectionOrder + 1,
					QuestionOrder: questionOrder + 1,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}

				for optionOrder, opt := range q.options {
					option := model.QuestionOption{
						QuestionID:  question.ID,
						OptionText:  opt.text,
						OptionValue: opt.value,
						OptionOrder: optionOrder + 1,
					}
					if err := tx.Create(&option).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// SeedDefaultAdmin cria o usuário administrativo padrão quando a tabela
// de usuários está vazia.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username: "admin",
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Usuário padrão criado: admin / admin123")
	return nil
}
