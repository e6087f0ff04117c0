package dto

import "time"

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes a page of a listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"12"`
	TotalItems  int64 `json:"totalItems" example:"30"`
}

// UserSummary is the populated form of a user reference
type UserSummary struct {
	ID    string `json:"id" example:"665f1c2e8b3e4a0012345678"`
	Name  string `json:"name" example:"Dr. Rajesh Kumar"`
	Email string `json:"email" example:"rajesh@organicclasses.com"`
}

// CountBucket is one row of a grouped count, keyed by the grouped value
type CountBucket struct {
	ID    string `json:"_id" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
