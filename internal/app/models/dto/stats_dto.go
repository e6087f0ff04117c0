package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BatchTypeStat aggregates courses of one batch type
type BatchTypeStat struct {
	ID            string `json:"_id" bson:"_id" example:"Regular"`
	Count         int64  `json:"count" bson:"count"`
	TotalEnrolled int64  `json:"totalEnrolled" bson:"totalEnrolled"`
	TotalCapacity int64  `json:"totalCapacity" bson:"totalCapacity"`
}

// CourseSummary backs GET /api/courses/stats/summary
type CourseSummary struct {
	ByBatchType   []BatchTypeStat `json:"byBatchType"`
	ByClass       []CountBucket   `json:"byClass"`
	BySubject     []CountBucket   `json:"bySubject"`
	TotalCourses  int64           `json:"totalCourses"`
	TotalEnrolled int64           `json:"totalEnrolled"`
}

// InquirySummary backs GET /api/inquiries/stats/summary
type InquirySummary struct {
	ByStatus        []CountBucket `json:"byStatus"`
	ByClass         []CountBucket `json:"byClass"`
	BySubject       []CountBucket `json:"bySubject"`
	RecentInquiries int64         `json:"recentInquiries"`
	Total           int64         `json:"total"`
}

// MonthlyTrendPoint is the inquiry count of one calendar month
type MonthlyTrendPoint struct {
	Year  int   `json:"year" bson:"year"`
	Month int   `json:"month" bson:"month"`
	Count int64 `json:"count" bson:"count"`
}

// WeeklyTrendPoint is the inquiry count of one week of the year
type WeeklyTrendPoint struct {
	Year  int   `json:"year" bson:"year"`
	Week  int   `json:"week" bson:"week"`
	Count int64 `json:"count" bson:"count"`
}

// RecentInquiry is the dashboard projection of an inquiry
type RecentInquiry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"`
	Class     string             `json:"class" bson:"class"`
	Subject   string             `json:"subject" bson:"subject"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// BatchCapacityStat is a batch type with its enrolled and capacity totals
type BatchCapacityStat struct {
	ID       string `json:"_id" bson:"_id" example:"Regular"`
	Count    int64  `json:"count" bson:"count"`
	Enrolled int64  `json:"enrolled" bson:"enrolled"`
	Capacity int64  `json:"capacity" bson:"capacity"`
}

// DashboardOverview holds the headline counters of the admin dashboard
type DashboardOverview struct {
	TotalInquiries      int64   `json:"totalInquiries"`
	NewInquiries        int64   `json:"newInquiries"`
	TodayInquiries      int64   `json:"todayInquiries"`
	WeekInquiries       int64   `json:"weekInquiries"`
	MonthInquiries      int64   `json:"monthInquiries"`
	TotalCourses        int64   `json:"totalCourses"`
	ActiveCourses       int64   `json:"activeCourses"`
	TotalEnrollments    int64   `json:"totalEnrollments"`
	TotalUsers          int64   `json:"totalUsers"`
	ConversionRate      float64 `json:"conversionRate"`
	CapacityUtilization float64 `json:"capacityUtilization"`
}

// DashboardInquiries holds the inquiry breakdowns of the dashboard
type DashboardInquiries struct {
	ByStatus     []CountBucket       `json:"byStatus"`
	BySubject    []CountBucket       `json:"bySubject"`
	ByClass      []CountBucket       `json:"byClass"`
	MonthlyTrend []MonthlyTrendPoint `json:"monthlyTrend"`
	WeeklyTrend  []WeeklyTrendPoint  `json:"weeklyTrend"`
	Recent       []RecentInquiry     `json:"recent"`
}

// DashboardCourses holds the course breakdowns of the dashboard
type DashboardCourses struct {
	ByBatchType      []BatchCapacityStat `json:"byBatchType"`
	TotalActive      int64               `json:"totalActive"`
	TotalEnrollments int64               `json:"totalEnrollments"`
}

// DashboardPerformance holds the derived ratios of the dashboard
type DashboardPerformance struct {
	ConversionRate      float64 `json:"conversionRate"`
	EnrollmentRate      int64   `json:"enrollmentRate"`
	CapacityUtilization float64 `json:"capacityUtilization"`
	AvgInquiriesPerDay  float64 `json:"avgInquiriesPerDay"`
	ResponseTime        string  `json:"responseTime" example:"< 2 hours"`
}

// DashboardStats backs GET /api/stats
type DashboardStats struct {
	Overview    DashboardOverview    `json:"overview"`
	Inquiries   DashboardInquiries   `json:"inquiries"`
	Courses     DashboardCourses     `json:"courses"`
	Performance DashboardPerformance `json:"performance"`
}

// DailyInquiryStat is the inquiry activity of one day
type DailyInquiryStat struct {
	Date     string   `json:"date" bson:"_id" example:"2025-04-23"`
	Count    int64    `json:"count" bson:"count"`
	ByStatus []string `json:"byStatus" bson:"byStatus"`
}

// InquiryTrend backs GET /api/stats/inquiries
type InquiryTrend struct {
	Period string             `json:"period" example:"30 days"`
	Days   int                `json:"days" example:"30"`
	Stats  []DailyInquiryStat `json:"stats"`
}

// BatchUtilization is a batch type with its average seat utilisation
type BatchUtilization struct {
	ID             string  `json:"_id" bson:"_id" example:"Medical"`
	Courses        int64   `json:"courses" bson:"courses"`
	TotalEnrolled  int64   `json:"totalEnrolled" bson:"totalEnrolled"`
	TotalCapacity  int64   `json:"totalCapacity" bson:"totalCapacity"`
	AvgUtilization float64 `json:"avgUtilization" bson:"avgUtilization"`
}

// PopularCourse is the leaderboard projection of a course
type PopularCourse struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Enrolled  int                `json:"enrolled" bson:"enrolled"`
	Capacity  int                `json:"capacity" bson:"capacity"`
	BatchType string             `json:"batchType" bson:"batchType"`
	Class     string             `json:"class" bson:"class"`
}

// SubjectPopularity is the enrolment across all courses teaching a subject
type SubjectPopularity struct {
	ID            string `json:"_id" bson:"_id" example:"Physics"`
	CourseCount   int64  `json:"courseCount" bson:"courseCount"`
	TotalEnrolled int64  `json:"totalEnrolled" bson:"totalEnrolled"`
}

// CourseInsights backs GET /api/stats/courses
type CourseInsights struct {
	ByBatchType       []BatchUtilization  `json:"byBatchType"`
	PopularCourses    []PopularCourse     `json:"popularCourses"`
	SubjectPopularity []SubjectPopularity `json:"subjectPopularity"`
}
