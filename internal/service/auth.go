package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

// maxPasswordBytes is the longest input bcrypt will hash
const maxPasswordBytes = 72

// RegisterInput is the registration payload
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=191,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the login payload
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthService verifies credentials and issues and resolves session tokens
type AuthService struct {
	users  UserRepository
	secret string
	ttl    time.Duration
}

// NewAuthService creates an AuthService signing tokens with secret for ttl
func NewAuthService(users UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// SessionTTL is the lifetime of issued tokens; the session cookie uses the same value
func (s *AuthService) SessionTTL() time.Duration { return s.ttl }

// Register creates a user with a bcrypt hashed password and returns it with a fresh token
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in, "Please provide name, email and password"); err != nil {
		return nil, "", err
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, "", domain.Validation("password must be at most 72 bytes")
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{Name: in.Name, Email: in.Email, Password: string(hash)}
	// The unique index still catches a concurrent registration of the same email
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User registered")
	return user, token, nil
}

// Login checks the email/password pair and returns a fresh token
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in, "Please provide email and password"); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		logrus.WithFields(logrus.Fields{"email": in.Email}).Warn("Login for unknown email")
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Warn("Login with wrong password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.ttl)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a session token to its user. Bad or expired tokens and
// users that no longer exist are Unauthenticated; lookup failures are not.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.Unauthenticated("Not authorized, no token")
	}
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, domain.Unauthenticated("Not authorized, token is invalid or expired")
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Unauthenticated("Not authorized, user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("server error during authentication: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
