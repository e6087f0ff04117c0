package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

func newTestCourseService(courses *fakeCourseRepo, users *fakeUserRepo) *courseServiceImpl {
	return &courseServiceImpl{courseRepo: courses, userRepo: users, logger: zerolog.Nop()}
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	open := &models.Course{Title: "Science Foundation", Capacity: 20, Enrolled: 15, IsActive: true}
	full := &models.Course{Title: "Full", Capacity: 2, Enrolled: 2, IsActive: true}
	closed := &models.Course{Title: "Closed", Capacity: 20, Enrolled: 1, IsActive: false}
	svc := newTestCourseService(newFakeCourseRepo(open, full, closed), newFakeUserRepo())

	resp, err := svc.Enroll(ctx, open.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 16, resp.Enrolled)
	assert.Equal(t, 4, resp.AvailableSeats)
	assert.Equal(t, "Science Foundation", resp.Title)

	cases := []struct {
		name    string
		id      string
		target  error
		message string
	}{
		{name: "full", id: full.ID.Hex(), target: apperrors.ErrCourseFull, message: MsgCourseFull},
		{name: "inactive", id: closed.ID.Hex(), target: apperrors.ErrCourseInactive, message: MsgCourseInactive},
		{name: "missing", id: primitive.NewObjectID().Hex(), target: apperrors.ErrCourseNotFound, message: MsgCourseNotFound},
		{name: "bad id", id: "not-an-id", target: apperrors.ErrInvalidID, message: MsgInvalidID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Enroll(ctx, tc.id)
			assert.ErrorIs(t, err, tc.target)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestEnrollFillsLastSeat(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{Title: "Almost", Capacity: 3, Enrolled: 2, IsActive: true}
	svc := newTestCourseService(newFakeCourseRepo(course), newFakeUserRepo())

	resp, err := svc.Enroll(ctx, course.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.AvailableSeats)

	_, err = svc.Enroll(ctx, course.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)
}

func TestUpdateCourseCapacityBelowEnrolled(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{Title: "Busy", Capacity: 20, Enrolled: 10, IsActive: true}
	svc := newTestCourseService(newFakeCourseRepo(course), newFakeUserRepo())

	capacity := 5
	req := &dto.CourseRequest{Title: "Busy", Capacity: &capacity, BatchType: models.BatchRegular}
	_, err := svc.UpdateCourse(ctx, course.ID.Hex(), req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, MsgCapacityBelowEnrolled, err.Error())

	capacity = 30
	resp, err := svc.UpdateCourse(ctx, course.ID.Hex(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.Capacity)
	assert.Equal(t, 10, resp.Enrolled)
	assert.Equal(t, 20, resp.AvailableSeats)
}

func TestCreateAndGetCourseWithTeacher(t *testing.T) {
	ctx := context.Background()
	teacher := &models.User{Name: "Dr. Rajesh Kumar", Email: "rajesh@organicclasses.com", Role: models.RoleTeacher, IsActive: true}
	users := newFakeUserRepo(teacher)
	svc := newTestCourseService(newFakeCourseRepo(), users)

	created, err := svc.CreateCourse(ctx, &dto.CourseRequest{
		Title:     "Science Foundation",
		Subjects:  []string{"Physics"},
		BatchType: models.BatchRegular,
		Teacher:   "Dr. Rajesh Kumar",
		TeacherID: teacher.ID.Hex(),
		Fee:       dto.FeeRequest{Yearly: 15000},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCourseCapacity, created.Capacity)
	assert.Equal(t, "₹15,000/year", created.FeeDisplay)
	assert.True(t, created.IsActive)

	got, err := svc.GetCourse(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got.TeacherRef)
	assert.Equal(t, "Dr. Rajesh Kumar", got.TeacherRef.Name)
	assert.Equal(t, "rajesh@organicclasses.com", got.TeacherRef.Email)
}

func TestListCoursesNormalizesPage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCourseRepo(&models.Course{Title: "A", Capacity: 10, IsActive: true})
	svc := newTestCourseService(repo, newFakeUserRepo())

	resp, err := svc.ListCourses(ctx, &dto.CourseListQuery{Class: "10th", Search: "sci"})
	require.NoError(t, err)

	assert.Len(t, resp.Courses, 1)
	assert.Equal(t, 1, repo.lastPage)
	assert.Equal(t, DefaultCoursePageSize, repo.lastSize)
	assert.Equal(t, "10th", repo.lastFilter.Class)
	assert.Equal(t, "sci", repo.lastFilter.Search)
	assert.Equal(t, int64(1), resp.Pagination.TotalItems)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestDeleteCourse(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{Title: "Gone", Capacity: 10}
	svc := newTestCourseService(newFakeCourseRepo(course), newFakeUserRepo())

	require.NoError(t, svc.DeleteCourse(ctx, course.ID.Hex()))
	err := svc.DeleteCourse(ctx, course.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
