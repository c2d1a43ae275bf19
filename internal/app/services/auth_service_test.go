package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/repositories/memory"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "colegio.test",
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	userRepo := memory.NewUserRepository()

	digest, err := auth.HashPassword("secreta1")
	require.NoError(t, err)
	stored := userRepo.Add(&models.User{
		CI:             "12345678",
		Name:           "Marta",
		Surname:        "Pereira",
		Email:          "marta@colegio.app",
		PasswordDigest: digest,
	})

	jwtService := newTestJWTService()
	svc := NewAuthService(userRepo, jwtService)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "marta@colegio.app", "secreta1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, stored.ID, user.ID)
		require.NotEmpty(t, token)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, claims.UserID)
		assert.Equal(t, "marta@colegio.app", claims.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nadie@colegio.app", "secreta1")
		assert.Equal(t, "user", notFoundEntity(t, err))
	})

	t.Run("wrong password answers like unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "marta@colegio.app", "incorrecta")
		assert.Equal(t, "user", notFoundEntity(t, err))
	})
}
