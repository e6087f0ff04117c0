package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
)

// Rate limit messages
const (
	MsgTooManyRequests          = "Too many requests from this IP, please try again later."
	MsgTooManyInquirySubmission = "Too many inquiry submissions from this IP, please try again later."
)

// RateLimitConfig describes one fixed window limiter
type RateLimitConfig struct {
	// Name namespaces the counters of this limiter
	Name    string
	Limit   int64
	Window  time.Duration
	Message string
}

// RateLimiter limits requests per client IP
type RateLimiter struct {
	limiter *limiter.Limiter
	config  RateLimitConfig
	logger  zerolog.Logger
	now     func() time.Time
}

// NewRateLimiter creates a limiter backed by store. Limiters sharing a
// store are kept apart by their name.
func NewRateLimiter(store limiter.Store, config RateLimitConfig, logger zerolog.Logger) *RateLimiter {
	rate := limiter.Rate{Period: config.Window, Limit: config.Limit}
	return &RateLimiter{
		limiter: limiter.New(store, rate),
		config:  config,
		logger:  logger,
		now:     time.Now,
	}
}

// Handler counts the request and rejects it with 429 once the window is
// used up. Store failures let the request through.
//
// The key is gin's ClientIP, so forwarded headers only count when the
// engine trusts the proxy that set them.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		lctx, err := l.limiter.Get(c.Request.Context(), l.config.Name+":"+clientIP)
		if err != nil {
			l.logger.Warn().Err(err).Str("limiter", l.config.Name).Msg("Rate limit store unavailable")
			c.Next()
			return
		}

		resetIn := lctx.Reset - l.now().Unix()
		if resetIn < 0 {
			resetIn = 0
		}

		c.Header("RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("RateLimit-Reset", strconv.FormatInt(resetIn, 10))

		if lctx.Reached {
			c.Header("Retry-After", strconv.FormatInt(resetIn, 10))
			l.logger.Warn().
				Str("limiter", l.config.Name).
				Str("clientIP", clientIP).
				Msg("Rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, l.config.Message).
					WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}

		c.Next()
	}
}
