package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/email"
)

// User facing authentication messages
const (
	MsgInvalidCredentials     = "Email or password is incorrect"
	MsgWrongCurrentPassword   = "Current password is incorrect"
	MsgOnlyAdminsCanRegister  = "Only admins can register new users"
	MsgEmailAlreadyRegistered = "A user with this email already exists"
	MsgUserAccountNotFound    = "User account not found"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, currentUser *models.User, req *dto.RegisterRequest) (*dto.UserResponse, error)
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, req *dto.ChangePasswordRequest) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo     repositories.IUserRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
	hashPassword func(string) (string, error)
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
		hashPassword: auth.HashPassword,
	}
}

// Login authenticates an active user. Unknown emails and wrong passwords
// produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("userID", user.ID.Hex()).Msg("Login attempt with wrong password")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("userID", user.ID.Hex()).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      dto.NewUserResponse(user),
	}, nil
}

// Register creates a staff account. Only admins may call it.
func (s *authServiceImpl) Register(ctx context.Context, currentUser *models.User, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if currentUser == nil || !currentUser.IsAdmin() {
		return nil, apperrors.NewForbiddenError(MsgOnlyAdminsCanRegister)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, MsgEmailAlreadyRegistered)
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, MsgEmailAlreadyRegistered)
		}
		return nil, err
	}

	s.logger.Info().
		Str("userID", user.ID.Hex()).
		Str("role", string(user.Role)).
		Str("createdBy", currentUser.ID.Hex()).
		Msg("Staff account registered")

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.Hex()).Msg("Failed to send welcome email")
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// GetCurrentUser returns the profile of the signed in user
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, MsgUserAccountNotFound)
		}
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ChangePassword replaces the password after checking the current one
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID primitive.ObjectID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewCustomError(apperrors.ErrUserNotFound, MsgUserAccountNotFound)
		}
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgWrongCurrentPassword)
	}

	hashed, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info().Str("userID", user.ID.Hex()).Msg("Password changed")
	return nil
}
