package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

func TestGenerateAndValidate(t *testing.T) {
	tm := NewTokenManager("test-secret", "pg-backend", time.Hour)
	user := &models.User{ID: uuid.New(), Email: "admin@sunflowerpg.com", Role: "admin"}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", "pg-backend", time.Hour)
	other := NewTokenManager("other-secret", "pg-backend", time.Hour)
	user := &models.User{ID: uuid.New(), Email: "admin@sunflowerpg.com", Role: "admin"}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	tm := NewTokenManager("test-secret", "pg-backend", time.Hour)
	other := NewTokenManager("test-secret", "someone-else", time.Hour)
	user := &models.User{ID: uuid.New(), Email: "admin@sunflowerpg.com", Role: "admin"}

	token, err := other.Generate(user)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", "pg-backend", -time.Minute)
	user := &models.User{ID: uuid.New(), Email: "admin@sunflowerpg.com", Role: "admin"}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
