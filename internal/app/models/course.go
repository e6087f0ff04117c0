package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCourseCapacity = 20
	MaxCourseCapacity     = 50
	DefaultCurrency       = "INR"
)

// Fee holds the course fee in the given currency
type Fee struct {
	Monthly  float64 `json:"monthly" bson:"monthly"`
	Yearly   float64 `json:"yearly" bson:"yearly"`
	Currency string  `json:"currency" bson:"currency" example:"INR"`
}

// Schedule describes the weekly slot of a batch
type Schedule struct {
	Days      []string `json:"days" bson:"days"`
	StartTime string   `json:"startTime,omitempty" bson:"startTime,omitempty" example:"16:00"`
	EndTime   string   `json:"endTime,omitempty" bson:"endTime,omitempty" example:"18:00"`
}

// SyllabusItem is one topic of a course syllabus
type SyllabusItem struct {
	Topic       string `json:"topic,omitempty" bson:"topic,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Duration    string `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Course is a batch offered by the institute
type Course struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title                string              `json:"title" bson:"title" example:"Science Foundation"`
	Description          string              `json:"description" bson:"description"`
	Class                string              `json:"class" bson:"class" example:"9th-10th"`
	Subjects             []string            `json:"subjects" bson:"subjects"`
	Duration             string              `json:"duration" bson:"duration" example:"1 Year"`
	BatchType            BatchType           `json:"batchType" bson:"batchType" example:"Regular"`
	Teacher              string              `json:"teacher" bson:"teacher"`
	TeacherID            *primitive.ObjectID `json:"teacherId,omitempty" bson:"teacherId,omitempty"`
	Fee                  Fee                 `json:"fee" bson:"fee"`
	Timing               string              `json:"timing" bson:"timing" example:"4:00 PM - 6:00 PM"`
	Schedule             Schedule            `json:"schedule" bson:"schedule"`
	Capacity             int                 `json:"capacity" bson:"capacity" example:"20"`
	Enrolled             int                 `json:"enrolled" bson:"enrolled" example:"0"`
	Syllabus             []SyllabusItem      `json:"syllabus" bson:"syllabus"`
	Features             []string            `json:"features" bson:"features"`
	Prerequisites        []string            `json:"prerequisites" bson:"prerequisites"`
	IsActive             bool                `json:"isActive" bson:"isActive"`
	StartDate            *time.Time          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate              *time.Time          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	RegistrationDeadline *time.Time          `json:"registrationDeadline,omitempty" bson:"registrationDeadline,omitempty"`
	Level                CourseLevel         `json:"level" bson:"level" example:"Beginner"`
	Tags                 []string            `json:"tags" bson:"tags"`
	CreatedAt            time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the zero values that have a stored default
func (c *Course) ApplyDefaults() {
	if c.Capacity == 0 {
		c.Capacity = DefaultCourseCapacity
	}
	if c.BatchType == "" {
		c.BatchType = BatchRegular
	}
	if c.Level == "" {
		c.Level = LevelBeginner
	}
	if c.Fee.Currency == "" {
		c.Fee.Currency = DefaultCurrency
	}
	if c.Subjects == nil {
		c.Subjects = []string{}
	}
	if c.Schedule.Days == nil {
		c.Schedule.Days = []string{}
	}
	if c.Syllabus == nil {
		c.Syllabus = []SyllabusItem{}
	}
	c.Features = trimAll(c.Features)
	c.Prerequisites = trimAll(c.Prerequisites)
	c.Tags = trimAll(c.Tags)
}

// AvailableSeats is the number of seats still open
func (c *Course) AvailableSeats() int {
	return c.Capacity - c.Enrolled
}

// IsFull reports whether no seat is left
func (c *Course) IsFull() bool {
	return c.Enrolled >= c.Capacity
}

// FeeDisplay renders the headline fee shown on course cards
func (c *Course) FeeDisplay() string {
	switch {
	case c.Fee.Yearly > 0:
		return "₹" + formatAmount(c.Fee.Yearly) + "/year"
	case c.Fee.Monthly > 0:
		return "₹" + formatAmount(c.Fee.Monthly) + "/month"
	default:
		return "Contact for fee details"
	}
}

// formatAmount groups the integer part in thousands and keeps at most
// three fraction digits, e.g. 15000 -> "15,000", 1250.5 -> "1,250.5"
func formatAmount(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
