package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
)

// IStatsRepository defines the read-only aggregations behind the statistics
// endpoints
type IStatsRepository interface {
	// Inquiries
	CountInquiries(ctx context.Context) (int64, error)
	CountInquiriesSince(ctx context.Context, since time.Time) (int64, error)
	CountInquiriesByStatus(ctx context.Context, status models.InquiryStatus) (int64, error)
	InquiriesByStatus(ctx context.Context) ([]dto.CountBucket, error)
	InquiriesByClass(ctx context.Context) ([]dto.CountBucket, error)
	InquiriesBySubject(ctx context.Context, limit int64) ([]dto.CountBucket, error)
	InquiryMonthlyTrend(ctx context.Context, since time.Time) ([]dto.MonthlyTrendPoint, error)
	InquiryWeeklyTrend(ctx context.Context, since time.Time) ([]dto.WeeklyTrendPoint, error)
	RecentInquiries(ctx context.Context, limit int64) ([]dto.RecentInquiry, error)
	DailyInquiries(ctx context.Context, since time.Time) ([]dto.DailyInquiryStat, error)

	// Courses
	CountCourses(ctx context.Context, activeOnly bool) (int64, error)
	SumEnrolled(ctx context.Context) (int64, error)
	SumActiveCapacity(ctx context.Context) (int64, error)
	CoursesByBatchType(ctx context.Context) ([]dto.BatchTypeStat, error)
	CourseBatchCapacity(ctx context.Context) ([]dto.BatchCapacityStat, error)
	CoursesByClass(ctx context.Context) ([]dto.CountBucket, error)
	CoursesBySubject(ctx context.Context) ([]dto.CountBucket, error)
	BatchUtilization(ctx context.Context) ([]dto.BatchUtilization, error)
	PopularCourses(ctx context.Context, limit int64) ([]dto.PopularCourse, error)
	SubjectPopularity(ctx context.Context) ([]dto.SubjectPopularity, error)
}

// StatsRepository runs aggregation pipelines over courses and inquiries
type StatsRepository struct {
	courses   *mongo.Collection
	inquiries *mongo.Collection
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{
		courses:   db.Collection(models.CoursesCollection),
		inquiries: db.Collection(models.InquiriesCollection),
	}
}

func aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("error running %s aggregation: %w", coll.Name(), err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("error decoding %s aggregation: %w", coll.Name(), err)
	}
	return nil
}

func count(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting %s: %w", coll.Name(), err)
	}
	return n, nil
}

// sumField totals field over the documents matching match
func sumField(ctx context.Context, coll *mongo.Collection, match bson.M, field string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$" + field}}},
		}}},
	}
	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := aggregate(ctx, coll, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// groupCount counts documents per value of field
func groupCount(field string, sort bson.D, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return pipeline
}

var (
	byIDAsc     = bson.D{{Key: "_id", Value: 1}}
	byCountDesc = bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}
)

func (r *StatsRepository) CountInquiries(ctx context.Context) (int64, error) {
	return count(ctx, r.inquiries, bson.M{})
}

func (r *StatsRepository) CountInquiriesSince(ctx context.Context, since time.Time) (int64, error) {
	return count(ctx, r.inquiries, bson.M{"createdAt": bson.M{"$gte": since}})
}

func (r *StatsRepository) CountInquiriesByStatus(ctx context.Context, status models.InquiryStatus) (int64, error) {
	return count(ctx, r.inquiries, bson.M{"status": status})
}

func (r *StatsRepository) InquiriesByStatus(ctx context.Context) ([]dto.CountBucket, error) {
	out := []dto.CountBucket{}
	err := aggregate(ctx, r.inquiries, groupCount("status", byIDAsc, 0), &out)
	return out, err
}

func (r *StatsRepository) InquiriesByClass(ctx context.Context) ([]dto.CountBucket, error) {
	out := []dto.CountBucket{}
	err := aggregate(ctx, r.inquiries, groupCount("class", byIDAsc, 0), &out)
	return out, err
}

// InquiriesBySubject returns the subjects ordered by inquiry count. A zero
// limit returns every subject.
func (r *StatsRepository) InquiriesBySubject(ctx context.Context, limit int64) ([]dto.CountBucket, error) {
	out := []dto.CountBucket{}
	err := aggregate(ctx, r.inquiries, groupCount("subject", byCountDesc, limit), &out)
	return out, err
}

// InquiryMonthlyTrend counts inquiries per calendar month since the given time
func (r *StatsRepository) InquiryMonthlyTrend(ctx context.Context, since time.Time) ([]dto.MonthlyTrendPoint, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$createdAt"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$createdAt"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "year", Value: "$_id.year"},
			{Key: "month", Value: "$_id.month"},
			{Key: "count", Value: 1},
		}}},
	}
	out := []dto.MonthlyTrendPoint{}
	err := aggregate(ctx, r.inquiries, pipeline, &out)
	return out, err
}

// InquiryWeeklyTrend counts inquiries per week of the year since the given time
func (r *StatsRepository) InquiryWeeklyTrend(ctx context.Context, since time.Time) ([]dto.WeeklyTrendPoint, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "week", Value: bson.D{{Key: "$week", Value: "$createdAt"}}},
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$createdAt"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.week", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "year", Value: "$_id.year"},
			{Key: "week", Value: "$_id.week"},
			{Key: "count", Value: 1},
		}}},
	}
	out := []dto.WeeklyTrendPoint{}
	err := aggregate(ctx, r.inquiries, pipeline, &out)
	return out, err
}

// RecentInquiries returns the newest inquiries in their dashboard projection
func (r *StatsRepository) RecentInquiries(ctx context.Context, limit int64) ([]dto.RecentInquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "phone": 1, "class": 1, "subject": 1, "status": 1, "createdAt": 1})

	cursor, err := r.inquiries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent inquiries: %w", err)
	}
	out := []dto.RecentInquiry{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding recent inquiries: %w", err)
	}
	return out, nil
}

// DailyInquiries groups inquiries per day since the given time, collecting
// the status of each one
func (r *StatsRepository) DailyInquiries(ctx context.Context, since time.Time) ([]dto.DailyInquiryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "byStatus", Value: bson.D{{Key: "$push", Value: "$status"}}},
		}}},
		{{Key: "$sort", Value: byIDAsc}},
	}
	out := []dto.DailyInquiryStat{}
	err := aggregate(ctx, r.inquiries, pipeline, &out)
	return out, err
}

func (r *StatsRepository) CountCourses(ctx context.Context, activeOnly bool) (int64, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	return count(ctx, r.courses, filter)
}

// SumEnrolled totals the enrolment of every course
func (r *StatsRepository) SumEnrolled(ctx context.Context) (int64, error) {
	return sumField(ctx, r.courses, bson.M{}, "enrolled")
}

// SumActiveCapacity totals the seats of the active courses
func (r *StatsRepository) SumActiveCapacity(ctx context.Context) (int64, error) {
	return sumField(ctx, r.courses, bson.M{"isActive": true}, "capacity")
}

func (r *StatsRepository) CoursesByBatchType(ctx context.Context) ([]dto.BatchTypeStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$batchType"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalEnrolled", Value: bson.D{{Key: "$sum", Value: "$enrolled"}}},
			{Key: "totalCapacity", Value: bson.D{{Key: "$sum", Value: "$capacity"}}},
		}}},
		{{Key: "$sort", Value: byIDAsc}},
	}
	out := []dto.BatchTypeStat{}
	err := aggregate(ctx, r.courses, pipeline, &out)
	return out, err
}

func (r *StatsRepository) CourseBatchCapacity(ctx context.Context) ([]dto.BatchCapacityStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$batchType"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "enrolled", Value: bson.D{{Key: "$sum", Value: "$enrolled"}}},
			{Key: "capacity", Value: bson.D{{Key: "$sum", Value: "$capacity"}}},
		}}},
		{{Key: "$sort", Value: byIDAsc}},
	}
	out := []dto.BatchCapacityStat{}
	err := aggregate(ctx, r.courses, pipeline, &out)
	return out, err
}

func (r *StatsRepository) CoursesByClass(ctx context.Context) ([]dto.CountBucket, error) {
	out := []dto.CountBucket{}
	err := aggregate(ctx, r.courses, groupCount("class", byIDAsc, 0), &out)
	return out, err
}

// CoursesBySubject counts the courses teaching each subject
func (r *StatsRepository) CoursesBySubject(ctx context.Context) ([]dto.CountBucket, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$unwind", Value: "$subjects"}},
	}, groupCount("subjects", byCountDesc, 0)...)

	out := []dto.CountBucket{}
	err := aggregate(ctx, r.courses, pipeline, &out)
	return out, err
}

// BatchUtilization reports seat usage per batch type
func (r *StatsRepository) BatchUtilization(ctx context.Context) ([]dto.BatchUtilization, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$batchType"},
			{Key: "courses", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalEnrolled", Value: bson.D{{Key: "$sum", Value: "$enrolled"}}},
			{Key: "totalCapacity", Value: bson.D{{Key: "$sum", Value: "$capacity"}}},
			{Key: "avgUtilization", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$multiply", Value: bson.A{
					bson.D{{Key: "$divide", Value: bson.A{"$enrolled", "$capacity"}}},
					100,
				}},
			}}}},
		}}},
		{{Key: "$sort", Value: byIDAsc}},
	}
	out := []dto.BatchUtilization{}
	err := aggregate(ctx, r.courses, pipeline, &out)
	return out, err
}

// PopularCourses returns the active courses with the highest enrolment
func (r *StatsRepository) PopularCourses(ctx context.Context, limit int64) ([]dto.PopularCourse, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"title": 1, "enrolled": 1, "capacity": 1, "batchType": 1, "class": 1})

	cursor, err := r.courses.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching popular courses: %w", err)
	}
	out := []dto.PopularCourse{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding popular courses: %w", err)
	}
	return out, nil
}

// SubjectPopularity totals the enrolment of every course teaching a subject
func (r *StatsRepository) SubjectPopularity(ctx context.Context) ([]dto.SubjectPopularity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$subjects"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$subjects"},
			{Key: "courseCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalEnrolled", Value: bson.D{{Key: "$sum", Value: "$enrolled"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalEnrolled", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	out := []dto.SubjectPopularity{}
	err := aggregate(ctx, r.courses, pipeline, &out)
	return out, err
}
