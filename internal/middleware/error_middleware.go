package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

// apiError is the HTTP rendering of an application error
type apiError struct {
	status   int
	code     dto.ErrorCode
	fallback string
}

// errorTable maps sentinel errors to their HTTP rendering. Order matters:
// the first sentinel found in the chain wins.
var errorTable = []struct {
	err error
	apiError
}{
	{apperrors.ErrInvalidID, apiError{http.StatusBadRequest, dto.ErrorCodeInvalidID, "Invalid ID format"}},
	{apperrors.ErrValidationFailed, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"}},
	{apperrors.ErrBadRequest, apiError{http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"}},
	{apperrors.ErrCourseFull, apiError{http.StatusBadRequest, dto.ErrorCodeCourseFull, "Course full"}},
	{apperrors.ErrCourseInactive, apiError{http.StatusBadRequest, dto.ErrorCodeCourseInactive, "Course inactive"}},
	{apperrors.ErrDuplicateInquiry, apiError{http.StatusBadRequest, dto.ErrorCodeDuplicateInquiry, "Duplicate inquiry"}},
	{apperrors.ErrInvalidCredentials, apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"}},
	{apperrors.ErrTokenExpired, apiError{http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired. Please login again"}},
	{apperrors.ErrTokenInvalid, apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"}},
	{apperrors.ErrTokenNotFound, apiError{http.StatusUnauthorized, dto.ErrorCodeMissingToken, "Token not provided"}},
	{apperrors.ErrAccountDisabled, apiError{http.StatusUnauthorized, dto.ErrorCodeAccountDisabled, "Account is deactivated"}},
	{apperrors.ErrPermissionDenied, apiError{http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"}},
	{apperrors.ErrUserNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"}},
	{apperrors.ErrCourseNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"}},
	{apperrors.ErrInquiryNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Inquiry not found"}},
	{apperrors.ErrResourceNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"}},
	{apperrors.ErrEmailAlreadyExists, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"}},
	{apperrors.ErrResourceAlreadyExists, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"}},
}

// HandleAPIError writes the error response for err. Unknown errors become
// a generic 500 and are logged with the request path.
func HandleAPIError(c *gin.Context, err error) {
	for _, entry := range errorTable {
		if !errors.Is(err, entry.err) {
			continue
		}

		detail := dto.NewErrorDetail(entry.code, apperrors.Message(err, entry.fallback))
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.StatusMsg != "" {
				detail = detail.WithDetails(custom.StatusMsg)
			}
			if custom.Details != nil {
				detail = detail.WithDetails(custom.Details)
			}
		}

		c.AbortWithStatusJSON(entry.status, dto.NewErrorResponse(detail))
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("requestID", c.GetString(RequestIDKey)).
		Msg("Unhandled error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Something went wrong!").
			WithSeverity(dto.ErrorSeverityCritical),
	))
}

// CustomRecovery turns panics into the generic 500 response
func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		HandleAPIError(c, fmt.Errorf("panic: %v", recovered))
	})
}

// NoRoute answers requests for unknown routes
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "Route not found").
				WithDetails(fmt.Sprintf("The route %s does not exist", c.Request.URL.Path)).
				WithSeverity(dto.ErrorSeverityWarning),
		))
	}
}
