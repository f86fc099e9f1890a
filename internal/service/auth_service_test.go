package service

import (
	"testing"
	"time"

	"hospital_survey_backend/internal/config"
	"hospital_survey_backend/internal/repository"
	"hospital_survey_backend/internal/util"
	"hospital_survey_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, database.SeedDefaultAdmin(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "segredo-de-teste"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestLoginDefaultAdmin(t *testing.T) {
	auth := newAuthService(t)

	token, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "segredo-de-teste")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.NotZero(t, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Login("admin", "senha-errada")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Login("ninguem", "admin123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestParseJWTWrongSecret(t *testing.T) {
	auth := newAuthService(t)

	token, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = util.ParseJWT(token, "outro-segredo")
	assert.Error(t, err)
}
