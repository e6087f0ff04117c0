package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/services"
	"github.com/Aman-Kr09/OrganicClasses/internal/middleware"
)

// InquiryController handles contact form submissions and their follow-up
type InquiryController struct {
	inquiryService services.InquiryService
	statsService   services.StatsService
	events         EventPublisher
	logger         zerolog.Logger
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService services.InquiryService, statsService services.StatsService, events EventPublisher, logger zerolog.Logger) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
		statsService:   statsService,
		events:         events,
		logger:         logger,
	}
}

// SubmitInquiry stores a contact form submission
// @Summary Submit inquiry
// @Description Public contact form. One submission per phone number per 24 hours, 5 per IP per hour.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} dto.APIResponse{data=dto.InquirySubmissionResponse} "Inquiry submitted successfully! We will contact you soon."
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate inquiry"
// @Failure 429 {object} dto.ErrorResponse "Too many inquiry submissions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [post]
func (c *InquiryController) SubmitInquiry(ctx *gin.Context) {
	var req dto.CreateInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.inquiryService.SubmitInquiry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	publish(c.events, EventInquiryCreated, resp)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Inquiry submitted successfully! We will contact you soon."))
}

// ListInquiries returns a page of inquiries
// @Summary List inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Status" Enums(new, contacted, enrolled, not_interested)
// @Param class query string false "Class"
// @Param subject query string false "Subject"
// @Param priority query string false "Priority" Enums(low, medium, high)
// @Param search query string false "Search in name, phone and email"
// @Param sort query string false "Sort field, prefix with - for descending" default(-createdAt)
// @Success 200 {object} dto.APIResponse{data=dto.InquiryListResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /inquiries [get]
func (c *InquiryController) ListInquiries(ctx *gin.Context) {
	var query dto.InquiryListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	resp, err := c.inquiryService.ListInquiries(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetInquiry returns one inquiry
// @Summary Get inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.InquiryResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [get]
func (c *InquiryController) GetInquiry(ctx *gin.Context) {
	inquiry, err := c.inquiryService.GetInquiry(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(inquiry, ""))
}

// UpdateInquiry records staff follow-up on an inquiry
// @Summary Update inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.InquiryResponse} "Inquiry updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [put]
func (c *InquiryController) UpdateInquiry(ctx *gin.Context) {
	var req dto.UpdateInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inquiry, err := c.inquiryService.UpdateInquiry(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(inquiry, "Inquiry updated successfully"))
}

// DeleteInquiry removes an inquiry
// @Summary Delete inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.APIResponse "Inquiry deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	if err := c.inquiryService.DeleteInquiry(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Inquiry deleted successfully"))
}

// GetInquirySummary returns inquiry breakdowns
// @Summary Inquiry statistics summary
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InquirySummary}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /inquiries/stats/summary [get]
func (c *InquiryController) GetInquirySummary(ctx *gin.Context) {
	summary, err := c.statsService.GetInquirySummary(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}
