package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/helpers"
)

// DefaultCoursePageSize is the page size of the public course listing
const DefaultCoursePageSize = 12

// User facing course messages
const (
	MsgCourseNotFound        = "The requested course does not exist"
	MsgCourseFull            = "This course has reached its maximum capacity"
	MsgCourseInactive        = "This course is not currently accepting enrollments"
	MsgCapacityBelowEnrolled = "Capacity cannot be lower than the number of enrolled students"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, query *dto.CourseListQuery) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id string) error
	Enroll(ctx context.Context, id string) (*dto.EnrollmentResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// mapCourseError attaches the user facing message to course sentinels
func mapCourseError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return apperrors.NewCustomError(apperrors.ErrCourseNotFound, MsgCourseNotFound)
	case errors.Is(err, apperrors.ErrCourseFull):
		return apperrors.NewCustomError(apperrors.ErrCourseFull, MsgCourseFull).WithStatusMsg("Course full")
	case errors.Is(err, apperrors.ErrCourseInactive):
		return apperrors.NewCustomError(apperrors.ErrCourseInactive, MsgCourseInactive).WithStatusMsg("Course inactive")
	case errors.Is(err, repositories.ErrCapacityBelowEnrolled):
		return apperrors.NewBadRequestError(MsgCapacityBelowEnrolled)
	default:
		return err
	}
}

// teachersFor loads the teacher accounts referenced by the courses
func (s *courseServiceImpl) teachersFor(ctx context.Context, courses ...*models.Course) map[primitive.ObjectID]*models.User {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, c := range courses {
		if c.TeacherID != nil && !seen[*c.TeacherID] {
			seen[*c.TeacherID] = true
			ids = append(ids, *c.TeacherID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	teachers, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		// courses are still served with the bare teacher reference
		s.logger.Warn().Err(err).Int("count", len(ids)).Msg("Failed to load course teachers")
		return nil
	}
	return teachers
}

func (s *courseServiceImpl) toResponse(ctx context.Context, course *models.Course) *dto.CourseResponse {
	var teacher *models.User
	if course.TeacherID != nil {
		teacher = s.teachersFor(ctx, course)[*course.TeacherID]
	}
	resp := dto.NewCourseResponse(course, teacher)
	return &resp
}

// ListCourses returns a page of the course catalogue
func (s *courseServiceImpl) ListCourses(ctx context.Context, query *dto.CourseListQuery) (*dto.CourseListResponse, error) {
	page, size := helpers.NormalizePage(query.Page, query.Limit, DefaultCoursePageSize)

	filter := repositories.CourseFilter{
		Class:     query.Class,
		Subject:   query.Subject,
		BatchType: query.BatchType,
		IsActive:  query.IsActive,
		Search:    query.Search,
		Sort:      query.Sort,
	}

	courses, total, err := s.courseRepo.List(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	teachers := s.teachersFor(ctx, courses...)
	items := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		var teacher *models.User
		if c.TeacherID != nil {
			teacher = teachers[*c.TeacherID]
		}
		items = append(items, dto.NewCourseResponse(c, teacher))
	}

	return &dto.CourseListResponse{
		Courses:    items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetCourse returns a single course
func (s *courseServiceImpl) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, mapCourseError(err)
	}
	return s.toResponse(ctx, course), nil
}

// CreateCourse stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course := req.ToModel()
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseID", course.ID.Hex()).Str("title", course.Title).Msg("Course created")
	return s.toResponse(ctx, course), nil
}

// UpdateCourse replaces the editable fields of a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.Update(ctx, oid, req.ToModel())
	if err != nil {
		return nil, mapCourseError(err)
	}

	s.logger.Info().Str("courseID", oid.Hex()).Msg("Course updated")
	return s.toResponse(ctx, updated), nil
}

// DeleteCourse removes a course
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, oid); err != nil {
		return mapCourseError(err)
	}

	s.logger.Info().Str("courseID", oid.Hex()).Msg("Course deleted")
	return nil
}

// Enroll takes one seat of a course
func (s *courseServiceImpl) Enroll(ctx context.Context, id string) (*dto.EnrollmentResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Enroll(ctx, oid)
	if err != nil {
		return nil, mapCourseError(err)
	}

	s.logger.Info().
		Str("courseID", course.ID.Hex()).
		Int("enrolled", course.Enrolled).
		Int("capacity", course.Capacity).
		Msg("Enrollment recorded")

	return &dto.EnrollmentResponse{
		ID:             course.ID.Hex(),
		Title:          course.Title,
		Enrolled:       course.Enrolled,
		AvailableSeats: course.AvailableSeats(),
	}, nil
}
