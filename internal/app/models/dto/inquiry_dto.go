package dto

import (
	"time"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
)

// CreateInquiryRequest is the public contact form payload
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"Rahul Sharma"`
	Phone   string `json:"phone" binding:"required,inphone" example:"9876543210"`
	Email   string `json:"email" binding:"omitempty,email" example:"rahul@example.com"`
	Class   string `json:"class" binding:"required,oneof=5th 6th 7th 8th 9th 10th 11th 12th" example:"10th"`
	Subject string `json:"subject" binding:"required,oneof=Physics Chemistry Mathematics Biology Accountancy Economics 'Business Studies' 'General Inquiry'" example:"Physics"`
	Message string `json:"message" binding:"max=500" example:"Looking for board exam preparation"`
}

// ToModel builds a new inquiry with defaults applied
func (r *CreateInquiryRequest) ToModel() *models.Inquiry {
	inquiry := &models.Inquiry{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Class:   r.Class,
		Subject: r.Subject,
		Message: r.Message,
	}
	inquiry.ApplyDefaults()
	return inquiry
}

// UpdateInquiryRequest carries the staff editable fields of an inquiry.
// Nil fields are left untouched.
type UpdateInquiryRequest struct {
	Status       *models.InquiryStatus   `json:"status" binding:"omitempty,oneof=new contacted enrolled not_interested" example:"contacted"`
	Priority     *models.InquiryPriority `json:"priority" binding:"omitempty,oneof=low medium high" example:"high"`
	Notes        *string                 `json:"notes" binding:"omitempty,max=1000"`
	FollowUpDate *time.Time              `json:"followUpDate"`
	AssignedTo   *string                 `json:"assignedTo" binding:"omitempty,objectid"`
}

// IsEmpty reports whether the update carries no field at all
func (r *UpdateInquiryRequest) IsEmpty() bool {
	return r.Status == nil && r.Priority == nil && r.Notes == nil && r.FollowUpDate == nil && r.AssignedTo == nil
}

// InquiryListQuery holds the filters of the staff inquiry listing
type InquiryListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status"`
	Class    string `form:"class"`
	Subject  string `form:"subject"`
	Priority string `form:"priority"`
	Sort     string `form:"sort"`
	Search   string `form:"search"`
}

// InquirySubmissionResponse is the public acknowledgement of a submission
type InquirySubmissionResponse struct {
	ID        string    `json:"id" example:"665f1c2e8b3e4a0012345678"`
	Name      string    `json:"name" example:"Rahul Sharma"`
	Phone     string    `json:"phone" example:"9876543210"`
	Class     string    `json:"class" example:"10th"`
	Subject   string    `json:"subject" example:"Physics"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewInquirySubmissionResponse trims an inquiry to its acknowledgement
func NewInquirySubmissionResponse(inquiry *models.Inquiry) InquirySubmissionResponse {
	return InquirySubmissionResponse{
		ID:        inquiry.ID.Hex(),
		Name:      inquiry.Name,
		Phone:     inquiry.Phone,
		Class:     inquiry.Class,
		Subject:   inquiry.Subject,
		CreatedAt: inquiry.CreatedAt,
	}
}

// InquiryResponse is an inquiry with its assignee populated
type InquiryResponse struct {
	*models.Inquiry
	AssignedRef *UserSummary `json:"assignedTo,omitempty"`
}

// NewInquiryResponse decorates an inquiry with its assignee
func NewInquiryResponse(inquiry *models.Inquiry, assignee *models.User) InquiryResponse {
	resp := InquiryResponse{Inquiry: inquiry}
	switch {
	case assignee != nil:
		resp.AssignedRef = NewUserSummary(assignee)
	case inquiry.AssignedTo != nil:
		resp.AssignedRef = &UserSummary{ID: inquiry.AssignedTo.Hex()}
	}
	return resp
}

// InquiryListResponse is a page of inquiries
type InquiryListResponse struct {
	Inquiries  []InquiryResponse `json:"inquiries"`
	Pagination PaginationInfo    `json:"pagination"`
}
