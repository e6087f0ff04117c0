package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/logger"
)

// AuthorizationService resolves the account behind a token and checks
// what it may do
type AuthorizationService struct {
	userRepo repositories.IUserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository) *AuthorizationService {
	return &AuthorizationService{userRepo: userRepo}
}

// ResolveUser loads the active account with the given hex id. A malformed
// id is reported as an invalid token since it can only come from one.
func (s *AuthorizationService) ResolveUser(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error loading user for token")
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	return user, nil
}

// HasRole reports whether the user holds one of roles
func HasRole(user *models.User, roles ...models.RoleType) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// ValidateRole returns ErrPermissionDenied unless the user holds one of roles
func (s *AuthorizationService) ValidateRole(user *models.User, roles ...models.RoleType) error {
	if !HasRole(user, roles...) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
