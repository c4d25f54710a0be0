package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrift_manager/internal/domain"
	"thrift_manager/internal/utils"
)

func TestRegister(t *testing.T) {
	svc, _ := newTestServices(t, nil)
	ctx := context.Background()

	user, token, err := svc.Auth.Register(ctx, RegisterInput{Name: " Ada ", Email: "Ada@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)

	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, gdb := newTestServices(t, nil)
	ctx := context.Background()
	mustRegister(t, svc, "dup@example.com")

	_, _, err := svc.Auth.Register(ctx, RegisterInput{Name: "Again", Email: "DUP@example.com", Password: "another1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestServices(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@example.com", Password: "secret123"}},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret123"}},
		{"short password", RegisterInput{Name: "A", Email: "a@example.com", Password: "123"}},
		{"password over bcrypt limit", RegisterInput{Name: "A", Email: "a@example.com", Password: strings.Repeat("a", 80)}},
		{"multibyte password over bcrypt limit", RegisterInput{Name: "A", Email: "a@example.com", Password: strings.Repeat("₦", 30)}},
		{"name too long", RegisterInput{Name: strings.Repeat("n", 101), Email: "a@example.com", Password: "secret123"}},
		{"email too long", RegisterInput{Name: "A", Email: strings.Repeat("e", 180) + "@example.com", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Auth.Register(ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegister_PasswordAtBcryptLimit(t *testing.T) {
	svc, _ := newTestServices(t, nil)
	ctx := context.Background()
	password := strings.Repeat("a", 72)

	_, _, err := svc.Auth.Register(ctx, RegisterInput{Name: "A", Email: "limit@example.com", Password: password})
	require.NoError(t, err)
	_, err = svc.Auth.Login(ctx, LoginInput{Email: "limit@example.com", Password: password})
	require.NoError(t, err)

	_, _, err = svc.Auth.Register(ctx, RegisterInput{Name: "A", Email: "long@example.com", Password: password + "a"})
	assert.EqualError(t, err, "password must be at most 72 bytes")
}

func TestLogin(t *testing.T) {
	svc, _ := newTestServices(t, nil)
	ctx := context.Background()
	user := mustRegister(t, svc, "login@example.com")

	token, err := svc.Auth.Login(ctx, LoginInput{Email: "login@example.com", Password: "secret123"})
	require.NoError(t, err)
	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = svc.Auth.Login(ctx, LoginInput{Email: "login@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Auth.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Auth.Login(ctx, LoginInput{Email: "login@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	svc, gdb := newTestServices(t, nil)
	ctx := context.Background()
	user, token, err := svc.Auth.Register(ctx, RegisterInput{Name: "Ada", Email: "auth@example.com", Password: "secret123"})
	require.NoError(t, err)

	got, err := svc.Auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Auth.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	expired, err := utils.GenerateJWT(user.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = svc.Auth.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	require.NoError(t, gdb.Where("id = ?", user.ID).Delete(&domain.User{}).Error)
	_, err = svc.Auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
