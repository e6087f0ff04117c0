package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// APIVersion is reported by the welcome endpoint
const APIVersion = "1.0.0"

const healthCheckTimeout = 3 * time.Second

// Pinger checks that a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemController serves the welcome and health endpoints
type SystemController struct {
	db     Pinger
	logger zerolog.Logger
}

// NewSystemController creates a new SystemController
func NewSystemController(db Pinger, logger zerolog.Logger) *SystemController {
	return &SystemController{
		db:     db,
		logger: logger,
	}
}

// Welcome lists the API entry points
func (c *SystemController) Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Organic Classes API",
		"version": APIVersion,
		"endpoints": gin.H{
			"auth":      "/api/auth",
			"inquiries": "/api/inquiries",
			"courses":   "/api/courses",
			"stats":     "/api/stats",
			"live":      "/api/live",
		},
	})
}

// Health reports whether the API and its database are up. It is mounted
// outside /api so load balancers can check it without a token.
func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.Error().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "ERROR",
			"message":   "Database is unreachable",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Organic Classes API is running",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}
