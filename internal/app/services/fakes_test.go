package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[primitive.ObjectID]*models.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

func (r *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			n++
		}
	}
	return n, nil
}

// fakeCourseRepo is an in-memory ICourseRepository
type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[primitive.ObjectID]*models.Course

	lastFilter repositories.CourseFilter
	lastPage   int
	lastSize   int
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[primitive.ObjectID]*models.Course)}
	for _, c := range courses {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now()
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) List(_ context.Context, filter repositories.CourseFilter, page, size int) ([]*models.Course, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter, r.lastPage, r.lastSize = filter, page, size
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCourseRepo) Update(_ context.Context, id primitive.ObjectID, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if course.Capacity < current.Enrolled {
		return nil, repositories.ErrCapacityBelowEnrolled
	}
	course.ID = id
	course.Enrolled = current.Enrolled
	course.CreatedAt = current.CreatedAt
	r.courses[id] = course
	cp := *course
	return &cp, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) Enroll(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	switch {
	case !ok:
		return nil, apperrors.ErrCourseNotFound
	case c.IsFull():
		return nil, apperrors.ErrCourseFull
	case !c.IsActive:
		return nil, apperrors.ErrCourseInactive
	}
	c.Enrolled++
	cp := *c
	return &cp, nil
}

// fakeInquiryRepo is an in-memory IInquiryRepository
type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[primitive.ObjectID]*models.Inquiry
}

func newFakeInquiryRepo(inquiries ...*models.Inquiry) *fakeInquiryRepo {
	r := &fakeInquiryRepo{inquiries: make(map[primitive.ObjectID]*models.Inquiry)}
	for _, i := range inquiries {
		if i.ID.IsZero() {
			i.ID = primitive.NewObjectID()
		}
		r.inquiries[i.ID] = i
	}
	return r
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry.ID = primitive.NewObjectID()
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.inquiries[id]
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInquiryRepo) List(_ context.Context, _ repositories.InquiryFilter, _, _ int) ([]*models.Inquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Inquiry, 0, len(r.inquiries))
	for _, i := range r.inquiries {
		out = append(out, i)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInquiryRepo) Update(_ context.Context, id primitive.ObjectID, u repositories.InquiryUpdate) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.inquiries[id]
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	if u.Status != nil {
		i.Status = *u.Status
	}
	if u.Priority != nil {
		i.Priority = *u.Priority
	}
	if u.Notes != nil {
		i.Notes = *u.Notes
	}
	if u.FollowUpDate != nil {
		i.FollowUpDate = u.FollowUpDate
	}
	if u.AssignedTo != nil {
		i.AssignedTo = u.AssignedTo
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInquiryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inquiries[id]; !ok {
		return apperrors.ErrInquiryNotFound
	}
	delete(r.inquiries, id)
	return nil
}

func (r *fakeInquiryRepo) ExistsByPhoneSince(_ context.Context, phone string, since time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.inquiries {
		if i.Phone == phone && !i.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// fakeStatsRepo returns canned aggregation results
type fakeStatsRepo struct {
	inquiries        int64
	byStatus         map[models.InquiryStatus]int64
	sinceCounts      map[time.Time]int64
	courses          int64
	activeCourses    int64
	enrolled         int64
	activeCapacity   int64
	batchUtilization []dto.BatchUtilization
	daily            []dto.DailyInquiryStat
	dailySince       time.Time
	subjectLimit     int64
	err              error
}

func (r *fakeStatsRepo) CountInquiries(context.Context) (int64, error) { return r.inquiries, r.err }

func (r *fakeStatsRepo) CountInquiriesSince(_ context.Context, since time.Time) (int64, error) {
	return r.sinceCounts[since], r.err
}

func (r *fakeStatsRepo) CountInquiriesByStatus(_ context.Context, status models.InquiryStatus) (int64, error) {
	return r.byStatus[status], r.err
}

func (r *fakeStatsRepo) InquiriesByStatus(context.Context) ([]dto.CountBucket, error) {
	return []dto.CountBucket{{ID: "new", Count: r.byStatus[models.InquiryStatusNew]}}, r.err
}

func (r *fakeStatsRepo) InquiriesByClass(context.Context) ([]dto.CountBucket, error) {
	return []dto.CountBucket{}, r.err
}

func (r *fakeStatsRepo) InquiriesBySubject(_ context.Context, limit int64) ([]dto.CountBucket, error) {
	r.subjectLimit = limit
	return []dto.CountBucket{}, r.err
}

func (r *fakeStatsRepo) InquiryMonthlyTrend(context.Context, time.Time) ([]dto.MonthlyTrendPoint, error) {
	return []dto.MonthlyTrendPoint{}, r.err
}

func (r *fakeStatsRepo) InquiryWeeklyTrend(context.Context, time.Time) ([]dto.WeeklyTrendPoint, error) {
	return []dto.WeeklyTrendPoint{}, r.err
}

func (r *fakeStatsRepo) RecentInquiries(context.Context, int64) ([]dto.RecentInquiry, error) {
	return []dto.RecentInquiry{}, r.err
}

func (r *fakeStatsRepo) DailyInquiries(_ context.Context, since time.Time) ([]dto.DailyInquiryStat, error) {
	r.dailySince = since
	return r.daily, r.err
}

func (r *fakeStatsRepo) CountCourses(_ context.Context, activeOnly bool) (int64, error) {
	if activeOnly {
		return r.activeCourses, r.err
	}
	return r.courses, r.err
}

func (r *fakeStatsRepo) SumEnrolled(context.Context) (int64, error) { return r.enrolled, r.err }

func (r *fakeStatsRepo) SumActiveCapacity(context.Context) (int64, error) {
	return r.activeCapacity, r.err
}

func (r *fakeStatsRepo) CoursesByBatchType(context.Context) ([]dto.BatchTypeStat, error) {
	return []dto.BatchTypeStat{}, r.err
}

func (r *fakeStatsRepo) CourseBatchCapacity(context.Context) ([]dto.BatchCapacityStat, error) {
	return []dto.BatchCapacityStat{}, r.err
}

func (r *fakeStatsRepo) CoursesByClass(context.Context) ([]dto.CountBucket, error) {
	return []dto.CountBucket{}, r.err
}

func (r *fakeStatsRepo) CoursesBySubject(context.Context) ([]dto.CountBucket, error) {
	return []dto.CountBucket{}, r.err
}

func (r *fakeStatsRepo) BatchUtilization(context.Context) ([]dto.BatchUtilization, error) {
	return r.batchUtilization, r.err
}

func (r *fakeStatsRepo) PopularCourses(context.Context, int64) ([]dto.PopularCourse, error) {
	return []dto.PopularCourse{}, r.err
}

func (r *fakeStatsRepo) SubjectPopularity(context.Context) ([]dto.SubjectPopularity, error) {
	return []dto.SubjectPopularity{}, r.err
}

// fakeEmailService records the notifications it was asked to send
type fakeEmailService struct {
	notified chan *models.Inquiry
	welcomed chan string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{
		notified: make(chan *models.Inquiry, 10),
		welcomed: make(chan string, 10),
	}
}

func (f *fakeEmailService) NotifyNewInquiry(inquiry *models.Inquiry) error {
	f.notified <- inquiry
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(toEmail, _ string) error {
	f.welcomed <- toEmail
	return nil
}
