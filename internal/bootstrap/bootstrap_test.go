package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/Aman-Kr09/OrganicClasses/internal/app/auth"
	appControllers "github.com/Aman-Kr09/OrganicClasses/internal/app/controllers"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/config"
	appMiddleware "github.com/Aman-Kr09/OrganicClasses/internal/middleware"
	pkgAuth "github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/ratelimit"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/websocket"
)

type acceptingInquiryService struct{}

func (acceptingInquiryService) SubmitInquiry(context.Context, *dto.CreateInquiryRequest) (*dto.InquirySubmissionResponse, error) {
	return &dto.InquirySubmissionResponse{}, nil
}

func (acceptingInquiryService) ListInquiries(context.Context, *dto.InquiryListQuery) (*dto.InquiryListResponse, error) {
	return &dto.InquiryListResponse{}, nil
}

func (acceptingInquiryService) GetInquiry(context.Context, string) (*dto.InquiryResponse, error) {
	return &dto.InquiryResponse{}, nil
}

func (acceptingInquiryService) UpdateInquiry(context.Context, string, *dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	return &dto.InquiryResponse{}, nil
}

func (acceptingInquiryService) DeleteInquiry(context.Context, string) error { return nil }

func testConfig(trustedProxies []string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Server.TrustedProxies = trustedProxies
	cfg.Server.BodyLimitMB = 1
	return cfg
}

// testDependencies wires only what a contact form submission touches
func testDependencies() *Dependencies {
	lgr := zerolog.Nop()
	store := ratelimit.NewMemoryStore()
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{SecretKey: "bootstrap-test", TokenExp: time.Hour})

	return &Dependencies{
		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService, appAuth.NewAuthorizationService(nil)),
		GeneralLimiter: appMiddleware.NewRateLimiter(store, appMiddleware.RateLimitConfig{
			Name: "general", Limit: 100, Window: 15 * time.Minute, Message: appMiddleware.MsgTooManyRequests,
		}, lgr),
		InquiryLimiter: appMiddleware.NewRateLimiter(store, appMiddleware.RateLimitConfig{
			Name: "inquiry", Limit: 5, Window: time.Hour, Message: appMiddleware.MsgTooManyInquirySubmission,
		}, lgr),
		AuthController:    appControllers.NewAuthController(nil, lgr),
		CourseController:  appControllers.NewCourseController(nil, nil, nil, lgr),
		InquiryController: appControllers.NewInquiryController(acceptingInquiryService{}, nil, nil, lgr),
		StatsController:   appControllers.NewStatsController(nil, lgr),
		SystemController:  appControllers.NewSystemController(nil, lgr),
		LiveHandler:       websocket.NewHandler(websocket.NewHub(lgr), nil, lgr),
	}
}

func submitInquiry(t *testing.T, handler http.Handler, forwardedFor string) int {
	t.Helper()
	body := []byte(`{"name":"Rahul Sharma","phone":"9876543210","class":"10th","subject":"Physics"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = "203.0.113.7:41000"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w.Code
}

func TestSetupRouterIgnoresUntrustedForwardedFor(t *testing.T) {
	router, err := SetupRouter(testConfig(nil), testDependencies(), zerolog.Nop())
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		code := submitInquiry(t, router, fmt.Sprintf("10.0.0.%d", i))
		require.Equal(t, http.StatusCreated, code, "submission %d", i)
	}

	assert.Equal(t, http.StatusTooManyRequests, submitInquiry(t, router, "10.0.0.6"))
	assert.Equal(t, http.StatusTooManyRequests, submitInquiry(t, router, "10.0.0.7"))
}

func TestSetupRouterHonoursTrustedProxy(t *testing.T) {
	router, err := SetupRouter(testConfig([]string{"203.0.113.7"}), testDependencies(), zerolog.Nop())
	require.NoError(t, err)

	for i := 1; i <= 8; i++ {
		code := submitInquiry(t, router, fmt.Sprintf("10.0.0.%d", i))
		assert.Equal(t, http.StatusCreated, code, "submission %d", i)
	}

	for i := 1; i <= 5; i++ {
		require.Equal(t, http.StatusCreated, submitInquiry(t, router, "198.51.100.20"))
	}
	assert.Equal(t, http.StatusTooManyRequests, submitInquiry(t, router, "198.51.100.20"))
}

func TestSetupRouterRejectsInvalidTrustedProxy(t *testing.T) {
	_, err := SetupRouter(testConfig([]string{"not-a-proxy"}), testDependencies(), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trusted proxies")
}
