package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTeacher RoleType = "teacher"
)

// BatchType groups courses by the audience they are run for
type BatchType string

const (
	BatchRegular          BatchType = "Regular"
	BatchGovernmentSchool BatchType = "Government School"
	BatchMedical          BatchType = "Medical"
	BatchEngineering      BatchType = "Engineering"
	BatchCommerce         BatchType = "Commerce"
	BatchSpecial          BatchType = "Special"
)

// CourseLevel is the difficulty of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// InquiryStatus tracks a lead through follow-up
type InquiryStatus string

const (
	InquiryStatusNew           InquiryStatus = "new"
	InquiryStatusContacted     InquiryStatus = "contacted"
	InquiryStatusEnrolled      InquiryStatus = "enrolled"
	InquiryStatusNotInterested InquiryStatus = "not_interested"
)

// InquiryPriority orders leads for follow-up
type InquiryPriority string

const (
	PriorityLow    InquiryPriority = "low"
	PriorityMedium InquiryPriority = "medium"
	PriorityHigh   InquiryPriority = "high"
)

// InquirySource records where a lead came from
type InquirySource string

const (
	SourceWebsite     InquirySource = "website"
	SourcePhone       InquirySource = "phone"
	SourceSocialMedia InquirySource = "social_media"
	SourceReferral    InquirySource = "referral"
	SourceWalkIn      InquirySource = "walk_in"
)

// Collection names
const (
	UsersCollection     = "users"
	CoursesCollection   = "courses"
	InquiriesCollection = "inquiries"
)
