package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authz "github.com/Aman-Kr09/OrganicClasses/internal/app/auth"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	CurrentUserKey = "currentUser"
	UserIDKey      = "userID"
	RoleKey        = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	authz      *authz.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, authzService *authz.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		authz:      authzService,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(code, message).WithDetails("Access denied"),
	))
}

// JWTAuth validates the bearer token and loads the active account behind it
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingHeader):
				abortUnauthorized(c, dto.ErrorCodeMissingToken, "No authorization header provided")
			case errors.Is(err, auth.ErrInvalidFormat):
				abortUnauthorized(c, dto.ErrorCodeInvalidTokenFormat, "Invalid authorization format. Use Bearer token")
			default:
				abortUnauthorized(c, dto.ErrorCodeMissingToken, "Token not provided")
			}
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired. Please login again")
			} else {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			}
			return
		}

		user, err := m.authz.ResolveUser(c.Request.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				abortUnauthorized(c, dto.ErrorCodeUserNotFound, "User not found")
			case errors.Is(err, apperrors.ErrAccountDisabled):
				abortUnauthorized(c, dto.ErrorCodeAccountDisabled, "Account is deactivated")
			case errors.Is(err, apperrors.ErrTokenInvalid):
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			default:
				HandleAPIError(c, err)
			}
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Set(RoleKey, string(user.Role))

		c.Next()
	}
}

// RoleRequired lets the request through only for the given roles. It must
// run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		if err := m.authz.ValidateRole(user, roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
					WithDetails("You don't have sufficient permissions for this operation"),
			))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the account loaded by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// CurrentUserID returns the id of the account loaded by JWTAuth
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}
