package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/email"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/helpers"
)

// DefaultInquiryPageSize is the page size of the staff inquiry listing
const DefaultInquiryPageSize = 10

// User facing inquiry messages
const (
	MsgInquiryNotFound  = "The requested inquiry does not exist"
	MsgDuplicateInquiry = "An inquiry with this phone number was already submitted today. Please call us directly for immediate assistance."
)

// InquiryService defines the interface for inquiry operations
type InquiryService interface {
	SubmitInquiry(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquirySubmissionResponse, error)
	ListInquiries(ctx context.Context, query *dto.InquiryListQuery) (*dto.InquiryListResponse, error)
	GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error)
	UpdateInquiry(ctx context.Context, id string, req *dto.UpdateInquiryRequest) (*dto.InquiryResponse, error)
	DeleteInquiry(ctx context.Context, id string) error
}

// inquiryServiceImpl implements the InquiryService interface
type inquiryServiceImpl struct {
	inquiryRepo  repositories.IInquiryRepository
	userRepo     repositories.IUserRepository
	emailService email.EmailService
	logger       zerolog.Logger
	now          func() time.Time
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(
	inquiryRepo repositories.IInquiryRepository,
	userRepo repositories.IUserRepository,
	emailService email.EmailService,
	logger zerolog.Logger,
) InquiryService {
	return &inquiryServiceImpl{
		inquiryRepo:  inquiryRepo,
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
		now:          time.Now,
	}
}

func mapInquiryError(err error) error {
	if errors.Is(err, apperrors.ErrInquiryNotFound) {
		return apperrors.NewCustomError(apperrors.ErrInquiryNotFound, MsgInquiryNotFound)
	}
	return err
}

// assigneesFor loads the users the inquiries are assigned to
func (s *inquiryServiceImpl) assigneesFor(ctx context.Context, inquiries ...*models.Inquiry) map[primitive.ObjectID]*models.User {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, inq := range inquiries {
		if inq.AssignedTo != nil && !seen[*inq.AssignedTo] {
			seen[*inq.AssignedTo] = true
			ids = append(ids, *inq.AssignedTo)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Int("count", len(ids)).Msg("Failed to load inquiry assignees")
		return nil
	}
	return users
}

func (s *inquiryServiceImpl) toResponse(ctx context.Context, inquiry *models.Inquiry) *dto.InquiryResponse {
	var assignee *models.User
	if inquiry.AssignedTo != nil {
		assignee = s.assigneesFor(ctx, inquiry)[*inquiry.AssignedTo]
	}
	resp := dto.NewInquiryResponse(inquiry, assignee)
	return &resp
}

// SubmitInquiry stores a contact form submission unless the same phone
// number already submitted one inside the duplicate window
func (s *inquiryServiceImpl) SubmitInquiry(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquirySubmissionResponse, error) {
	inquiry := req.ToModel()
	now := s.now()

	duplicate, err := s.inquiryRepo.ExistsByPhoneSince(ctx, inquiry.Phone, now.Add(-models.DuplicateInquiryWindow))
	if err != nil {
		return nil, err
	}
	if duplicate {
		s.logger.Info().Str("phone", inquiry.Phone).Msg("Duplicate inquiry rejected")
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateInquiry, MsgDuplicateInquiry).WithStatusMsg("Duplicate inquiry")
	}

	inquiry.CreatedAt = now
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("inquiryID", inquiry.ID.Hex()).
		Str("class", inquiry.Class).
		Str("subject", inquiry.Subject).
		Msg("Inquiry submitted")

	submitted := *inquiry
	go func() {
		if err := s.emailService.NotifyNewInquiry(&submitted); err != nil {
			s.logger.Warn().Err(err).Str("inquiryID", submitted.ID.Hex()).Msg("Failed to send inquiry notification")
		}
	}()

	resp := dto.NewInquirySubmissionResponse(inquiry)
	return &resp, nil
}

// ListInquiries returns a page of inquiries
func (s *inquiryServiceImpl) ListInquiries(ctx context.Context, query *dto.InquiryListQuery) (*dto.InquiryListResponse, error) {
	page, size := helpers.NormalizePage(query.Page, query.Limit, DefaultInquiryPageSize)

	filter := repositories.InquiryFilter{
		Status:   query.Status,
		Class:    query.Class,
		Subject:  query.Subject,
		Priority: query.Priority,
		Search:   query.Search,
		Sort:     query.Sort,
	}

	inquiries, total, err := s.inquiryRepo.List(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	assignees := s.assigneesFor(ctx, inquiries...)
	items := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		var assignee *models.User
		if inq.AssignedTo != nil {
			assignee = assignees[*inq.AssignedTo]
		}
		items = append(items, dto.NewInquiryResponse(inq, assignee))
	}

	return &dto.InquiryListResponse{
		Inquiries:  items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetInquiry returns a single inquiry
func (s *inquiryServiceImpl) GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	inquiry, err := s.inquiryRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, mapInquiryError(err)
	}
	return s.toResponse(ctx, inquiry), nil
}

// UpdateInquiry applies the staff follow-up fields
func (s *inquiryServiceImpl) UpdateInquiry(ctx context.Context, id string, req *dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return s.GetInquiry(ctx, id)
	}

	update := repositories.InquiryUpdate{
		Status:       req.Status,
		Priority:     req.Priority,
		Notes:        req.Notes,
		FollowUpDate: req.FollowUpDate,
	}
	if req.AssignedTo != nil {
		assignee, err := parseObjectID(*req.AssignedTo)
		if err != nil {
			return nil, err
		}
		update.AssignedTo = &assignee
	}

	inquiry, err := s.inquiryRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, mapInquiryError(err)
	}

	s.logger.Info().Str("inquiryID", oid.Hex()).Str("status", string(inquiry.Status)).Msg("Inquiry updated")
	return s.toResponse(ctx, inquiry), nil
}

// DeleteInquiry removes an inquiry
func (s *inquiryServiceImpl) DeleteInquiry(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if err := s.inquiryRepo.Delete(ctx, oid); err != nil {
		return mapInquiryError(err)
	}

	s.logger.Info().Str("inquiryID", oid.Hex()).Msg("Inquiry deleted")
	return nil
}
