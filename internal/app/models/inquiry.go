package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DuplicateInquiryWindow is how long a phone number is blocked from
// submitting another inquiry
const DuplicateInquiryWindow = 24 * time.Hour

// Inquiry is a lead captured from the contact form or entered by staff
type Inquiry struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name         string              `json:"name" bson:"name" example:"Rahul Sharma"`
	Phone        string              `json:"phone" bson:"phone" example:"9876543210"`
	Email        string              `json:"email,omitempty" bson:"email,omitempty"`
	Class        string              `json:"class" bson:"class" example:"10th"`
	Subject      string              `json:"subject" bson:"subject" example:"Physics"`
	Message      string              `json:"message,omitempty" bson:"message,omitempty"`
	Status       InquiryStatus       `json:"status" bson:"status" example:"new"`
	Priority     InquiryPriority     `json:"priority" bson:"priority" example:"medium"`
	Source       InquirySource       `json:"source" bson:"source" example:"website"`
	Notes        string              `json:"notes,omitempty" bson:"notes,omitempty"`
	FollowUpDate *time.Time          `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	AssignedTo   *primitive.ObjectID `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults normalises a freshly submitted inquiry
func (i *Inquiry) ApplyDefaults() {
	i.Name = strings.TrimSpace(i.Name)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Message = strings.TrimSpace(i.Message)
	if i.Status == "" {
		i.Status = InquiryStatusNew
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
	if i.Source == "" {
		i.Source = SourceWebsite
	}
}
