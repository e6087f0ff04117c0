package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/middleware"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterGinValidators()
}

type stubAuthService struct {
	login    func(req *dto.LoginRequest) (*dto.LoginResponse, error)
	register func(current *models.User, req *dto.RegisterRequest) (*dto.UserResponse, error)
	changed  *dto.ChangePasswordRequest
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.login(req)
}

func (s *stubAuthService) Register(_ context.Context, current *models.User, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.register(current, req)
}

func (s *stubAuthService) GetCurrentUser(_ context.Context, id primitive.ObjectID) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id.Hex(), Name: "Admin User"}, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _ primitive.ObjectID, req *dto.ChangePasswordRequest) error {
	s.changed = req
	return nil
}

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) {
	p.types = append(p.types, eventType)
}

type stubCourseService struct {
	enrollErr error
	listQuery *dto.CourseListQuery
}

func (s *stubCourseService) ListCourses(_ context.Context, q *dto.CourseListQuery) (*dto.CourseListResponse, error) {
	s.listQuery = q
	return &dto.CourseListResponse{}, nil
}

func (s *stubCourseService) GetCourse(_ context.Context, id string) (*dto.CourseResponse, error) {
	if id == "missing" {
		return nil, apperrors.ErrCourseNotFound
	}
	return &dto.CourseResponse{Course: &models.Course{Title: "Science Foundation"}}, nil
}

func (s *stubCourseService) CreateCourse(_ context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{Course: req.ToModel()}, nil
}

func (s *stubCourseService) UpdateCourse(_ context.Context, _ string, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{Course: req.ToModel()}, nil
}

func (s *stubCourseService) DeleteCourse(context.Context, string) error { return nil }

func (s *stubCourseService) Enroll(_ context.Context, id string) (*dto.EnrollmentResponse, error) {
	if s.enrollErr != nil {
		return nil, s.enrollErr
	}
	return &dto.EnrollmentResponse{ID: id, Enrolled: 5, AvailableSeats: 15}, nil
}

type stubInquiryService struct {
	submitErr error
	submitted *dto.CreateInquiryRequest
}

func (s *stubInquiryService) SubmitInquiry(_ context.Context, req *dto.CreateInquiryRequest) (*dto.InquirySubmissionResponse, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submitted = req
	return &dto.InquirySubmissionResponse{Name: req.Name, Phone: req.Phone}, nil
}

func (s *stubInquiryService) ListInquiries(context.Context, *dto.InquiryListQuery) (*dto.InquiryListResponse, error) {
	return &dto.InquiryListResponse{}, nil
}

func (s *stubInquiryService) GetInquiry(context.Context, string) (*dto.InquiryResponse, error) {
	return nil, apperrors.ErrInvalidID
}

func (s *stubInquiryService) UpdateInquiry(context.Context, string, *dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	return &dto.InquiryResponse{Inquiry: &models.Inquiry{Status: models.InquiryStatusContacted}}, nil
}

func (s *stubInquiryService) DeleteInquiry(context.Context, string) error { return nil }

type stubStatsService struct {
	days int
}

func (s *stubStatsService) GetDashboard(context.Context) (*dto.DashboardStats, error) {
	return &dto.DashboardStats{}, nil
}

func (s *stubStatsService) GetInquiryTrend(_ context.Context, days int) (*dto.InquiryTrend, error) {
	s.days = days
	if days < 0 || days > 365 {
		return nil, apperrors.NewValidationError("period must be between 1 and 365 days")
	}
	return &dto.InquiryTrend{Days: days}, nil
}

func (s *stubStatsService) GetCourseInsights(context.Context) (*dto.CourseInsights, error) {
	return nil, errors.New("aggregation failed")
}

func (s *stubStatsService) GetCourseSummary(context.Context) (*dto.CourseSummary, error) {
	return &dto.CourseSummary{}, nil
}

func (s *stubStatsService) GetInquirySummary(context.Context) (*dto.InquirySummary, error) {
	return &dto.InquirySummary{}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// withUser stands in for the JWT middleware
func withUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.RoleKey, string(user.Role))
		c.Next()
	}
}

func TestInquiryController_Submit(t *testing.T) {
	svc := &stubInquiryService{}
	events := &recordingPublisher{}
	ctrl := NewInquiryController(svc, &stubStatsService{}, events, zerolog.Nop())
	router := gin.New()
	router.POST("/api/inquiries", ctrl.SubmitInquiry)

	valid := map[string]string{
		"name":    "Rahul Sharma",
		"phone":   "9876543210",
		"class":   "10th",
		"subject": "Physics",
	}

	t.Run("created", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/inquiries", valid)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Inquiry submitted successfully! We will contact you soon.", env.Message)
		require.NotNil(t, svc.submitted)
		assert.Equal(t, "9876543210", svc.submitted.Phone)
		assert.Equal(t, []string{EventInquiryCreated}, events.types)
	})

	t.Run("invalid phone", func(t *testing.T) {
		body := map[string]string{"name": "Rahul", "phone": "12345", "class": "10th", "subject": "Physics"}
		w, env := perform(t, router, http.MethodPost, "/api/inquiries", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
		assert.Equal(t, dto.PhoneMessage, env.Error.Message)
		assert.Equal(t, "phone", env.Error.Field)
	})

	t.Run("unknown subject", func(t *testing.T) {
		body := map[string]string{"name": "Rahul", "phone": "9876543210", "class": "10th", "subject": "Astrology"}
		w, env := perform(t, router, http.MethodPost, "/api/inquiries", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "subject", env.Error.Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/inquiries", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", env.Error.Message)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc.submitErr = apperrors.ErrDuplicateInquiry
		defer func() { svc.submitErr = nil }()

		w, env := perform(t, router, http.MethodPost, "/api/inquiries", valid)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(dto.ErrorCodeDuplicateInquiry), env.Error.Code)
		assert.Len(t, events.types, 1)
	})
}

func TestInquiryController_Get(t *testing.T) {
	ctrl := NewInquiryController(&stubInquiryService{}, &stubStatsService{}, nil, zerolog.Nop())
	router := gin.New()
	router.GET("/api/inquiries/:id", ctrl.GetInquiry)

	w, env := perform(t, router, http.MethodGet, "/api/inquiries/not-an-id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeInvalidID), env.Error.Code)
}

func TestInquiryController_UpdateRejectsBadStatus(t *testing.T) {
	ctrl := NewInquiryController(&stubInquiryService{}, &stubStatsService{}, nil, zerolog.Nop())
	router := gin.New()
	router.PUT("/api/inquiries/:id", ctrl.UpdateInquiry)

	w, env := perform(t, router, http.MethodPut, "/api/inquiries/"+primitive.NewObjectID().Hex(), map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status", env.Error.Field)

	w, env = perform(t, router, http.MethodPut, "/api/inquiries/"+primitive.NewObjectID().Hex(), map[string]string{"status": "contacted"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Inquiry updated successfully", env.Message)
}

func TestCourseController_Enroll(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"success", nil, http.StatusOK, ""},
		{"full", apperrors.ErrCourseFull, http.StatusBadRequest, dto.ErrorCodeCourseFull},
		{"inactive", apperrors.ErrCourseInactive, http.StatusBadRequest, dto.ErrorCodeCourseInactive},
		{"missing", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bad id", apperrors.ErrInvalidID, http.StatusBadRequest, dto.ErrorCodeInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &recordingPublisher{}
			ctrl := NewCourseController(&stubCourseService{enrollErr: tt.err}, &stubStatsService{}, events, zerolog.Nop())
			router := gin.New()
			router.POST("/api/courses/:id/enroll", ctrl.Enroll)

			w, env := perform(t, router, http.MethodPost, "/api/courses/abc/enroll", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err == nil {
				assert.Equal(t, "Enrollment successful", env.Message)
				var data dto.EnrollmentResponse
				require.NoError(t, json.Unmarshal(env.Data, &data))
				assert.Equal(t, 15, data.AvailableSeats)
				assert.Equal(t, []string{EventCourseEnrolled}, events.types)
				return
			}
			assert.Equal(t, string(tt.wantCode), env.Error.Code)
			assert.Empty(t, events.types)
		})
	}
}

func TestCourseController_ListAndCreate(t *testing.T) {
	svc := &stubCourseService{}
	ctrl := NewCourseController(svc, &stubStatsService{}, nil, zerolog.Nop())
	router := gin.New()
	router.GET("/api/courses", ctrl.ListCourses)
	router.POST("/api/courses", ctrl.CreateCourse)

	t.Run("list binds filters", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodGet, "/api/courses?page=2&limit=5&batchType=Medical&isActive=false", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.listQuery)
		assert.Equal(t, 2, svc.listQuery.Page)
		assert.Equal(t, "Medical", svc.listQuery.BatchType)
		require.NotNil(t, svc.listQuery.IsActive)
		assert.False(t, *svc.listQuery.IsActive)
	})

	t.Run("list rejects oversized page", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodGet, "/api/courses?limit=1000", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		body := map[string]interface{}{
			"title":       "Science Foundation",
			"description": "Board exam preparation",
			"class":       "9th-10th",
			"subjects":    []string{"Physics", "Chemistry"},
			"duration":    "12 months",
			"batchType":   "Regular",
			"teacher":     "Dr. Rajesh Kumar",
			"timing":      "4:00 PM - 6:00 PM",
			"fee":         map[string]float64{"yearly": 15000},
		}
		w, env := perform(t, router, http.MethodPost, "/api/courses", body)

		assert.Equal(t, http.StatusCreated, w.Code, string(env.Data))
		assert.Equal(t, "Course created successfully", env.Message)
	})

	t.Run("create rejects capacity over 50", func(t *testing.T) {
		body := map[string]interface{}{
			"title": "X", "description": "Y", "class": "10th", "subjects": []string{"Physics"},
			"duration": "1 Year", "batchType": "Regular", "teacher": "T", "timing": "evening",
			"capacity": 60,
		}
		w, env := perform(t, router, http.MethodPost, "/api/courses", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "capacity", env.Error.Field)
	})
}

func TestCourseController_GetMissing(t *testing.T) {
	ctrl := NewCourseController(&stubCourseService{}, &stubStatsService{}, nil, zerolog.Nop())
	router := gin.New()
	router.GET("/api/courses/:id", ctrl.GetCourse)

	w, env := perform(t, router, http.MethodGet, "/api/courses/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", env.Error.Message)
}

func TestAuthController(t *testing.T) {
	admin := &models.User{ID: primitive.NewObjectID(), Name: "Admin User", Role: models.RoleAdmin, IsActive: true}
	svc := &stubAuthService{
		login: func(req *dto.LoginRequest) (*dto.LoginResponse, error) {
			if req.Password != "admin123" {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &dto.LoginResponse{Token: "token", TokenType: "Bearer"}, nil
		},
		register: func(current *models.User, req *dto.RegisterRequest) (*dto.UserResponse, error) {
			if current == nil || !current.IsAdmin() {
				return nil, apperrors.ErrPermissionDenied
			}
			return &dto.UserResponse{Email: req.Email, Role: string(req.Role)}, nil
		},
	}
	ctrl := NewAuthController(svc, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)
	protected := router.Group("/api/auth", withUser(admin))
	protected.POST("/register", ctrl.Register)
	protected.GET("/me", ctrl.Me)
	protected.POST("/change-password", ctrl.ChangePassword)

	t.Run("login", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "admin@organicclasses.com", Password: "admin123"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Login successful", env.Message)
	})

	t.Run("login wrong password", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "admin@organicclasses.com", Password: "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, string(dto.ErrorCodeInvalidCredentials), env.Error.Code)
	})

	t.Run("login invalid email", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "admin", Password: "admin123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email", env.Error.Field)
	})

	t.Run("register", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Name: "Ms. Priya Sharma", Email: "priya@organicclasses.com", Password: "teacher123", Role: models.RoleTeacher,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "User registered successfully", env.Message)
	})

	t.Run("me", func(t *testing.T) {
		w, env := perform(t, router, http.MethodGet, "/api/auth/me", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var user dto.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, admin.ID.Hex(), user.ID)
	})

	t.Run("change password", func(t *testing.T) {
		w, env := perform(t, router, http.MethodPost, "/api/auth/change-password", dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "newpass1"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password changed successfully", env.Message)
		require.NotNil(t, svc.changed)
		assert.Equal(t, "newpass1", svc.changed.NewPassword)
	})

	t.Run("change password too short", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodPost, "/api/auth/change-password", dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatsController(t *testing.T) {
	svc := &stubStatsService{}
	ctrl := NewStatsController(svc, zerolog.Nop())
	router := gin.New()
	router.GET("/api/stats", ctrl.GetDashboard)
	router.GET("/api/stats/inquiries", ctrl.GetInquiryTrend)
	router.GET("/api/stats/courses", ctrl.GetCourseInsights)

	t.Run("dashboard", func(t *testing.T) {
		w, env := perform(t, router, http.MethodGet, "/api/stats", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
	})

	t.Run("trend without period leaves the default to the service", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodGet, "/api/stats/inquiries", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, svc.days)
	})

	t.Run("trend with period", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodGet, "/api/stats/inquiries?period=7", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, svc.days)
	})

	t.Run("trend with non numeric period", func(t *testing.T) {
		w, env := perform(t, router, http.MethodGet, "/api/stats/inquiries?period=week", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
	})

	t.Run("trend out of range", func(t *testing.T) {
		w, _ := perform(t, router, http.MethodGet, "/api/stats/inquiries?period=400", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("course insights failure hides the cause", func(t *testing.T) {
		w, env := perform(t, router, http.MethodGet, "/api/stats/courses", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Something went wrong!", env.Error.Message)
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestSystemController(t *testing.T) {
	t.Run("welcome", func(t *testing.T) {
		router := gin.New()
		router.GET("/", NewSystemController(stubPinger{}, zerolog.Nop()).Welcome)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome to Organic Classes API")
		assert.Contains(t, w.Body.String(), "/api/inquiries")
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDB     string
	}{
		{"healthy", nil, http.StatusOK, "connected"},
		{"database down", errors.New("no reachable servers"), http.StatusServiceUnavailable, "disconnected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewSystemController(stubPinger{err: tt.err}, zerolog.Nop()).Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDB, body["database"])
		})
	}
}
