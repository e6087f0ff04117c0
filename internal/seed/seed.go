package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/config"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
)

// UserStore is the part of the user repository the seeder needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// CourseStore creates courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
}

// InquiryStore creates inquiries
type InquiryStore interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
}

// CourseCounter counts stored courses
type CourseCounter interface {
	CountCourses(ctx context.Context, activeOnly bool) (int64, error)
}

// Stores groups the repositories written by CreateDefaultData
type Stores struct {
	Users     UserStore
	Courses   CourseStore
	Inquiries InquiryStore
	Stats     CourseCounter
}

// StoresFrom picks the seeder stores out of the repository container
func StoresFrom(repos *repositories.Repositories) Stores {
	return Stores{
		Users:     repos.UserRepository,
		Courses:   repos.CourseRepository,
		Inquiries: repos.InquiryRepository,
		Stats:     repos.StatsRepository,
	}
}

// CreateDefaultData makes sure an admin account exists and, when enabled,
// fills an empty database with the sample teachers, courses and inquiries.
// Errors are collected so one failed record does not stop the rest.
func CreateDefaultData(ctx context.Context, stores Stores, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	admin, err := ensureAdmin(ctx, stores.Users, cfg, lgr)
	if err != nil {
		return err
	}

	if !cfg.Seed.SampleData {
		return nil
	}

	courses, err := stores.Stats.CountCourses(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if courses > 0 {
		lgr.Info().Int64("courses", courses).Msg("Courses already present, skipping sample data")
		return nil
	}

	var finalErr error

	teacherIDs := make(map[string]primitive.ObjectID)
	for _, t := range sampleTeachers() {
		id, err := ensureUser(ctx, stores.Users, t.name, t.email, t.password, models.RoleTeacher)
		if err != nil {
			lgr.Error().Err(err).Str("email", t.email).Msg("Error creating sample teacher")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		teacherIDs[t.name] = id
	}

	created := 0
	for _, course := range sampleCourses() {
		if id, ok := teacherIDs[course.Teacher]; ok {
			course.TeacherID = &id
		}
		if err := stores.Courses.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}
	lgr.Info().Int("count", created).Msg("Sample courses created")

	created = 0
	for i, inquiry := range sampleInquiries() {
		// every other lead is handed to the admin
		if admin != nil && i%2 == 0 {
			adminID := admin.ID
			inquiry.AssignedTo = &adminID
		}
		if err := stores.Inquiries.Create(ctx, inquiry); err != nil {
			lgr.Error().Err(err).Str("phone", inquiry.Phone).Msg("Error creating sample inquiry")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}
	lgr.Info().Int("count", created).Msg("Sample inquiries created")

	return finalErr
}

// ensureAdmin creates the configured admin when no admin account exists.
// It returns the configured admin if it can be found.
func ensureAdmin(ctx context.Context, users UserStore, cfg *config.Config, lgr zerolog.Logger) (*models.User, error) {
	admins, err := users.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	if admins == 0 {
		if cfg.Seed.AdminPassword == "" {
			lgr.Warn().Msg("No admin account exists and no seed admin password is configured")
			return nil, nil
		}
		if _, err := ensureUser(ctx, users, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, models.RoleAdmin); err != nil {
			return nil, fmt.Errorf("failed to create default admin: %w", err)
		}
		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin account created")
	}

	admin, err := users.GetActiveByEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

// ensureUser creates an active account unless one with the email exists,
// and returns its ID either way
func ensureUser(ctx context.Context, users UserStore, name, email, password string, role models.RoleType) (primitive.ObjectID, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	err = users.Create(ctx, user)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return primitive.NilObjectID, err
	}

	existing, err := users.GetActiveByEmail(ctx, email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return existing.ID, nil
}
