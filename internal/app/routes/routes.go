package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/controllers"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/middleware"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth    *controllers.AuthController
	Course  *controllers.CourseController
	Inquiry *controllers.InquiryController
	Stats   *controllers.StatsController
	System  *controllers.SystemController
	Live    *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	inquiryLimiter gin.HandlerFunc,
) {
	router.GET("/", ctrl.System.Welcome)
	router.GET("/health", ctrl.System.Health)

	api := router.Group("/api")
	requireAuth := authMiddleware.JWTAuth()

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/register", requireAuth, authMiddleware.RoleRequired(models.RoleAdmin), ctrl.Auth.Register)
		auth.GET("/me", requireAuth, ctrl.Auth.Me)
		auth.POST("/change-password", requireAuth, ctrl.Auth.ChangePassword)
	}

	// --- Course routes ---
	courses := api.Group("/courses")
	{
		courses.GET("", ctrl.Course.ListCourses)
		courses.GET("/stats/summary", requireAuth, ctrl.Course.GetCourseSummary)
		courses.GET("/:id", ctrl.Course.GetCourse)
		courses.POST("/:id/enroll", ctrl.Course.Enroll)

		coursesProtected := courses.Group("", requireAuth)
		{
			coursesProtected.POST("", ctrl.Course.CreateCourse)
			coursesProtected.PUT("/:id", ctrl.Course.UpdateCourse)
			coursesProtected.DELETE("/:id", ctrl.Course.DeleteCourse)
		}
	}

	// --- Inquiry routes ---
	inquiries := api.Group("/inquiries")
	{
		// the contact form is public but has its own, tighter limit
		inquiries.POST("", inquiryLimiter, ctrl.Inquiry.SubmitInquiry)

		inquiriesProtected := inquiries.Group("", requireAuth)
		{
			inquiriesProtected.GET("", ctrl.Inquiry.ListInquiries)
			inquiriesProtected.GET("/stats/summary", ctrl.Inquiry.GetInquirySummary)
			inquiriesProtected.GET("/:id", ctrl.Inquiry.GetInquiry)
			inquiriesProtected.PUT("/:id", ctrl.Inquiry.UpdateInquiry)
			inquiriesProtected.DELETE("/:id", ctrl.Inquiry.DeleteInquiry)
		}
	}

	// --- Dashboard statistics ---
	stats := api.Group("/stats", requireAuth)
	{
		stats.GET("", ctrl.Stats.GetDashboard)
		stats.GET("/inquiries", ctrl.Stats.GetInquiryTrend)
		stats.GET("/courses", ctrl.Stats.GetCourseInsights)
	}

	// --- Live staff feed ---
	api.GET("/live", requireAuth, ctrl.Live.HandleConnection)

	router.NoRoute(middleware.NoRoute())
}
