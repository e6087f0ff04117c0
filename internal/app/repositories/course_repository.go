package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/dberrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/helpers"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/logger"
)

// ErrCapacityBelowEnrolled is returned when an update would shrink a course
// below its current enrolment
var ErrCapacityBelowEnrolled = errors.New("capacity below enrolled count")

// enrollAttempts bounds the retries when a course changes between the
// conditional update and the classification read
const enrollAttempts = 3

var courseSortFields = map[string]bool{
	"createdAt":   true,
	"updatedAt":   true,
	"title":       true,
	"class":       true,
	"batchType":   true,
	"enrolled":    true,
	"capacity":    true,
	"startDate":   true,
	"fee.yearly":  true,
	"fee.monthly": true,
}

// CourseFilter holds the optional filters of a course listing
type CourseFilter struct {
	Class     string
	Subject   string
	BatchType string
	IsActive  *bool
	Search    string
	Sort      string
}

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	List(ctx context.Context, filter CourseFilter, page, size int) ([]*models.Course, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, course *models.Course) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Enroll(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{
		coll: db.Collection(models.CoursesCollection),
	}
}

// buildCourseFilter converts a CourseFilter into a MongoDB query. Courses
// are listed active-only unless IsActive says otherwise.
func buildCourseFilter(f CourseFilter) bson.M {
	isActive := true
	if f.IsActive != nil {
		isActive = *f.IsActive
	}
	filter := bson.M{"isActive": isActive}

	if f.Class != "" {
		filter["class"] = helpers.ContainsRegex(f.Class)
	}
	if f.Subject != "" {
		filter["subjects"] = bson.M{"$in": bson.A{f.Subject}}
	}
	if f.BatchType != "" {
		filter["batchType"] = f.BatchType
	}
	if f.Search != "" {
		re := helpers.ContainsRegex(f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"teacher": re},
			bson.M{"subjects": bson.M{"$in": bson.A{re}}},
		}
	}
	return filter
}

// Create inserts a course with a zero enrolment
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now()
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error inserting course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course: %w", err)
	}
	return &course, nil
}

// List returns one page of courses matching the filter and the total count
func (r *CourseRepository) List(ctx context.Context, f CourseFilter, page, size int) ([]*models.Course, int64, error) {
	filter := buildCourseFilter(f)
	skip, limit := helpers.CalculateSkipLimit(page, size)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	opts := options.Find().
		SetSort(helpers.ParseSort(f.Sort, courseSortFields, bson.D{{Key: "createdAt", Value: -1}})).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}

	courses := make([]*models.Course, 0, limit)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, total, nil
}

// editableCourseFields converts a course into a $set document holding every
// field except the identity, the enrolment counter and the creation time
func editableCourseFields(course *models.Course) (bson.M, error) {
	raw, err := bson.Marshal(course)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	delete(set, "_id")
	delete(set, "enrolled")
	delete(set, "createdAt")
	set["updatedAt"] = time.Now()
	return set, nil
}

// Update replaces the editable fields of a course and returns the stored
// document. The enrolment counter is kept.
func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, course *models.Course) (*models.Course, error) {
	set, err := editableCourseFields(course)
	if err != nil {
		return nil, fmt.Errorf("error encoding course: %w", err)
	}

	filter := bson.M{"_id": id, "enrolled": bson.M{"$lte": course.Capacity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Course
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !dberrors.IsNotFound(err) {
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error updating course")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, ErrCapacityBelowEnrolled
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Enroll atomically takes one seat of an active course that is not full.
// When no seat can be taken the course is re-read to report why.
func (r *CourseRepository) Enroll(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	filter := bson.M{
		"_id":      id,
		"isActive": true,
		"$expr":    bson.M{"$lt": bson.A{"$enrolled", "$capacity"}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for attempt := 0; attempt < enrollAttempts; attempt++ {
		update := bson.M{
			"$inc": bson.M{"enrolled": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		}

		var course models.Course
		err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&course)
		if err == nil {
			return &course, nil
		}
		if !dberrors.IsNotFound(err) {
			logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error enrolling in course")
			return nil, fmt.Errorf("error enrolling in course: %w", err)
		}

		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		switch {
		case current.IsFull():
			return nil, apperrors.ErrCourseFull
		case !current.IsActive:
			return nil, apperrors.ErrCourseInactive
		}
		// the course changed between the two reads, try again
	}

	return nil, apperrors.ErrCourseFull
}
