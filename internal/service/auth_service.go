package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"deepdive/internal/model"
	"deepdive/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username already exists")
)

// AuthService handles admin accounts and JWT issuance
type AuthService struct {
	admins    repository.AdminRepo
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(admins repository.AdminRepo, jwtSecret string) *AuthService {
	return &AuthService{
		admins:    admins,
		jwtSecret: []byte(jwtSecret),
	}
}

// CreateAdmin registers a new admin account with a bcrypt-hashed password
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) error {
	existing, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.admins.Create(ctx, &model.Admin{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := &model.AdminClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:    tokenString,
		Username: admin.Username,
	}, nil
}

// ValidateToken validates an admin JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
