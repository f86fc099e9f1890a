package util

import "errors"

var (
	ErrSurveyNotFound     = errors.New("pesquisa não encontrada")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("usuário ou senha incorretos")
)
