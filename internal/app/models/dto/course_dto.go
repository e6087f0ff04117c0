package dto

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
)

// FeeRequest is the fee block of a course payload
type FeeRequest struct {
	Monthly  float64 `json:"monthly" binding:"gte=0" example:"1500"`
	Yearly   float64 `json:"yearly" binding:"gte=0" example:"15000"`
	Currency string  `json:"currency" binding:"omitempty,max=10" example:"INR"`
}

// ScheduleRequest is the weekly schedule of a course payload
type ScheduleRequest struct {
	Days      []string `json:"days" binding:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string   `json:"startTime" example:"16:00"`
	EndTime   string   `json:"endTime" example:"18:00"`
}

// CourseRequest is the full course payload accepted on create and update
type CourseRequest struct {
	Title                string                `json:"title" binding:"required,max=100" example:"Science Foundation"`
	Description          string                `json:"description" binding:"required,max=500"`
	Class                string                `json:"class" binding:"required" example:"9th-10th"`
	Subjects             []string              `json:"subjects" binding:"required,min=1,dive,oneof=Physics Chemistry Mathematics Biology Accountancy Economics 'Business Studies' English Hindi 'Social Science'"`
	Duration             string                `json:"duration" binding:"required" example:"1 Year"`
	BatchType            models.BatchType      `json:"batchType" binding:"required,oneof=Regular 'Government School' Medical Engineering Commerce Special" example:"Regular"`
	Teacher              string                `json:"teacher" binding:"required,max=50" example:"Dr. Rajesh Kumar"`
	TeacherID            string                `json:"teacherId" binding:"omitempty,objectid"`
	Fee                  FeeRequest            `json:"fee"`
	Timing               string                `json:"timing" binding:"required" example:"4:00 PM - 6:00 PM"`
	Schedule             ScheduleRequest       `json:"schedule"`
	Capacity             *int                  `json:"capacity" binding:"omitempty,min=1,max=50" example:"20"`
	Syllabus             []models.SyllabusItem `json:"syllabus"`
	Features             []string              `json:"features"`
	Prerequisites        []string              `json:"prerequisites"`
	StartDate            *time.Time            `json:"startDate"`
	EndDate              *time.Time            `json:"endDate"`
	RegistrationDeadline *time.Time            `json:"registrationDeadline"`
	Level                models.CourseLevel    `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced" example:"Beginner"`
	Tags                 []string              `json:"tags"`
	IsActive             *bool                 `json:"isActive"`
}

// ToModel builds a course with defaults applied. The payload must already
// have passed binding validation.
func (r *CourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Class:       strings.TrimSpace(r.Class),
		Subjects:    r.Subjects,
		Duration:    strings.TrimSpace(r.Duration),
		BatchType:   r.BatchType,
		Teacher:     strings.TrimSpace(r.Teacher),
		Fee: models.Fee{
			Monthly:  r.Fee.Monthly,
			Yearly:   r.Fee.Yearly,
			Currency: r.Fee.Currency,
		},
		Timing: strings.TrimSpace(r.Timing),
		Schedule: models.Schedule{
			Days:      r.Schedule.Days,
			StartTime: r.Schedule.StartTime,
			EndTime:   r.Schedule.EndTime,
		},
		Syllabus:             r.Syllabus,
		Features:             r.Features,
		Prerequisites:        r.Prerequisites,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		Level:                r.Level,
		Tags:                 r.Tags,
		IsActive:             true,
	}

	if r.Capacity != nil {
		course.Capacity = *r.Capacity
	}
	if r.IsActive != nil {
		course.IsActive = *r.IsActive
	}
	if oid, err := primitive.ObjectIDFromHex(r.TeacherID); err == nil {
		course.TeacherID = &oid
	}

	course.ApplyDefaults()
	return course
}

// CourseListQuery holds the filters of the public course listing
type CourseListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Class     string `form:"class"`
	Subject   string `form:"subject"`
	BatchType string `form:"batchType"`
	IsActive  *bool  `form:"isActive"`
	Sort      string `form:"sort"`
	Search    string `form:"search"`
}

// CourseResponse is a course with its derived fields and populated teacher
type CourseResponse struct {
	*models.Course
	TeacherRef     *UserSummary `json:"teacherId,omitempty"`
	AvailableSeats int          `json:"availableSeats" example:"5"`
	FeeDisplay     string       `json:"feeDisplay" example:"₹15,000/year"`
}

// NewCourseResponse decorates a course. teacher may be nil when the course
// has no linked teacher account or the account no longer exists.
func NewCourseResponse(course *models.Course, teacher *models.User) CourseResponse {
	resp := CourseResponse{
		Course:         course,
		AvailableSeats: course.AvailableSeats(),
		FeeDisplay:     course.FeeDisplay(),
	}
	switch {
	case teacher != nil:
		resp.TeacherRef = NewUserSummary(teacher)
	case course.TeacherID != nil:
		resp.TeacherRef = &UserSummary{ID: course.TeacherID.Hex()}
	}
	return resp
}

// CourseListResponse is a page of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// EnrollmentResponse is returned after a successful enrollment
type EnrollmentResponse struct {
	ID             string `json:"id" example:"665f1c2e8b3e4a0012345678"`
	Title          string `json:"title" example:"Science Foundation"`
	Enrolled       int    `json:"enrolled" example:"16"`
	AvailableSeats int    `json:"availableSeats" example:"4"`
}
