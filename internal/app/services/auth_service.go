package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

// AuthService handles sign-in and token issuance
type AuthService struct {
	userRepo   IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues an access token. A wrong
// password answers exactly like an unknown email so the response never
// reveals which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.NewNotFound("user")
	}

	if !auth.CheckPassword(user.PasswordDigest, password) {
		return nil, "", apperrors.NewNotFound("user")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
