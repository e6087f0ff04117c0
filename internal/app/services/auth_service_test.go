package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
)

func fastHash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}

func newTestUser(t *testing.T, email, password string, role models.RoleType, active bool) *models.User {
	t.Helper()
	hash, err := fastHash(password)
	require.NoError(t, err)
	return &models.User{
		Name:     "Test " + string(role),
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: active,
	}
}

func newTestAuthService(repo *fakeUserRepo, mail *fakeEmailService) *authServiceImpl {
	return &authServiceImpl{
		userRepo: repo,
		jwtService: auth.NewJWTService(auth.JWTConfig{
			SecretKey:   "test-secret",
			TokenExp:    time.Hour,
			TokenIssuer: "organic-classes-test",
		}),
		emailService: mail,
		logger:       zerolog.Nop(),
		hashPassword: fastHash,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	admin := newTestUser(t, "admin@organicclasses.com", "admin123", models.RoleAdmin, true)
	disabled := newTestUser(t, "old@organicclasses.com", "teacher123", models.RoleTeacher, false)
	repo := newFakeUserRepo(admin, disabled)
	svc := newTestAuthService(repo, newFakeEmailService())

	t.Run("success updates last login", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@organicclasses.com", Password: "admin123"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, admin.ID.Hex(), resp.User.ID)
		require.NotNil(t, resp.User.LastLogin)

		stored, err := repo.GetByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLogin)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPass := svc.Login(ctx, &dto.LoginRequest{Email: "admin@organicclasses.com", Password: "nope123"})
		_, unknown := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@organicclasses.com", Password: "admin123"})

		require.Error(t, wrongPass)
		require.Error(t, unknown)
		assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, apperrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
		assert.Equal(t, MsgInvalidCredentials, unknown.Error())
	})

	t.Run("inactive account cannot log in", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "old@organicclasses.com", Password: "teacher123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	admin := newTestUser(t, "admin@organicclasses.com", "admin123", models.RoleAdmin, true)
	teacher := newTestUser(t, "rajesh@organicclasses.com", "teacher123", models.RoleTeacher, true)
	repo := newFakeUserRepo(admin, teacher)
	mail := newFakeEmailService()
	svc := newTestAuthService(repo, mail)

	t.Run("teacher is forbidden", func(t *testing.T) {
		_, err := svc.Register(ctx, teacher, &dto.RegisterRequest{Name: "X", Email: "x@organicclasses.com", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, MsgOnlyAdminsCanRegister, err.Error())
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		_, err := svc.Register(ctx, nil, &dto.RegisterRequest{Name: "X", Email: "x@organicclasses.com", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, admin, &dto.RegisterRequest{Name: "Dup", Email: "RAJESH@organicclasses.com", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		assert.Equal(t, MsgEmailAlreadyRegistered, err.Error())
	})

	t.Run("admin registers teacher", func(t *testing.T) {
		resp, err := svc.Register(ctx, admin, &dto.RegisterRequest{
			Name:     "Dr. Priya Singh",
			Email:    "priya@organicclasses.com",
			Password: "teacher123",
			Role:     models.RoleTeacher,
		})
		require.NoError(t, err)
		assert.Equal(t, "teacher", resp.Role)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "priya@organicclasses.com", <-mail.welcomed)

		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "priya@organicclasses.com", Password: "teacher123"})
		assert.NoError(t, err)
	})

	t.Run("role defaults to admin", func(t *testing.T) {
		resp, err := svc.Register(ctx, admin, &dto.RegisterRequest{Name: "Second", Email: "second@organicclasses.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
		<-mail.welcomed
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	admin := newTestUser(t, "admin@organicclasses.com", "admin123", models.RoleAdmin, true)
	repo := newFakeUserRepo(admin)
	svc := newTestAuthService(repo, newFakeEmailService())

	err := svc.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong1", NewPassword: "newpass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, MsgWrongCurrentPassword, err.Error())

	err = svc.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "newpass1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@organicclasses.com", Password: "newpass1"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@organicclasses.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	admin := newTestUser(t, "admin@organicclasses.com", "admin123", models.RoleAdmin, true)
	svc := newTestAuthService(newFakeUserRepo(admin), newFakeEmailService())

	resp, err := svc.GetCurrentUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@organicclasses.com", resp.Email)

	_, err = svc.GetCurrentUser(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, MsgUserAccountNotFound, err.Error())
}
