package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/lead-finder/internal/auth"
	"github.com/octobees/lead-finder/internal/dto"
)

// ErrInvalidCredentials is returned for a wrong operator email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the single operator credential and issues tokens.
type AuthService struct {
	email        string
	passwordHash []byte
	jwt          *auth.JWTManager
}

// NewAuthService constructs a new AuthService for the configured operator.
func NewAuthService(email, passwordHash string, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		jwt:          jwtManager,
	}
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(_ context.Context, email, password string) (dto.LoginResponse, error) {
	if email == "" || password == "" {
		return dto.LoginResponse{}, ValidationError{Message: "email and password are required"}
	}
	if s.email == "" || len(s.passwordHash) == 0 {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	// Compare the hash even on an unknown email so both paths cost the same.
	hashErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if strings.ToLower(strings.TrimSpace(email)) != s.email || hashErr != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, expires, err := s.jwt.GenerateToken(s.email, auth.RoleOperator)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{AccessToken: token, ExpiresAt: expires}, nil
}
