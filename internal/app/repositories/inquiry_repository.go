package repositories

import (
	"context"
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

var inquirySortFields = map[string]bool{
	"createdAt":    true,
	"updatedAt":    true,
	"name":         true,
	"status":       true,
	"priority":     true,
	"class":        true,
	"subject":      true,
	"followUpDate": true,
}

// InquiryFilter holds the optional filters of an inquiry listing
type InquiryFilter struct {
	Status   string
	Class    string
	Subject  string
	Priority string
	Search   string
	Sort     string
}

// InquiryUpdate carries the fields to change on an inquiry. Nil fields are
// left untouched.
type InquiryUpdate struct {
	Status       *models.InquiryStatus
	Priority     *models.InquiryPriority
	Notes        *string
	FollowUpDate *time.Time
	AssignedTo   *primitive.ObjectID
}

// IInquiryRepository defines the interface for inquiry database operations
type IInquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error)
	List(ctx context.Context, filter InquiryFilter, page, size int) ([]*models.Inquiry, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update InquiryUpdate) (*models.Inquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ExistsByPhoneSince(ctx context.Context, phone string, since time.Time) (bool, error)
}

// InquiryRepository handles inquiry database operations
type InquiryRepository struct {
	coll *mongo.Collection
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{
		coll: db.Collection(models.InquiriesCollection),
	}
}

func buildInquiryFilter(f InquiryFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Class != "" {
		filter["class"] = f.Class
	}
	if f.Subject != "" {
		filter["subject"] = f.Subject
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.Search != "" {
		re := helpers.ContainsRegex(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"phone": re},
			bson.M{"email": re},
		}
	}
	return filter
}

// buildInquirySet converts an InquiryUpdate into a $set document
func buildInquirySet(u InquiryUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Priority != nil {
		set["priority"] = *u.Priority
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.FollowUpDate != nil {
		set["followUpDate"] = *u.FollowUpDate
	}
	if u.AssignedTo != nil {
		set["assignedTo"] = *u.AssignedTo
	}
	return set
}

// Create inserts an inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	now := time.Now()
	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inquiry); err != nil {
		logger.Error().Err(err).Str("phone", inquiry.Phone).Msg("Error inserting inquiry")
		return fmt.Errorf("error creating inquiry: %w", err)
	}
	return nil
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry); err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error fetching inquiry: %w", err)
	}
	return &inquiry, nil
}

// List returns one page of inquiries matching the filter and the total count
func (r *InquiryRepository) List(ctx context.Context, f InquiryFilter, page, size int) ([]*models.Inquiry, int64, error) {
	filter := buildInquiryFilter(f)
	skip, limit := helpers.CalculateSkipLimit(page, size)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting inquiries")
		return nil, 0, fmt.Errorf("error counting inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(helpers.ParseSort(f.Sort, inquirySortFields, bson.D{{Key: "createdAt", Value: -1}})).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing inquiries")
		return nil, 0, fmt.Errorf("error listing inquiries: %w", err)
	}

	inquiries := make([]*models.Inquiry, 0, limit)
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, fmt.Errorf("error decoding inquiries: %w", err)
	}
	return inquiries, total, nil
}

// Update applies a partial update and returns the stored document
func (r *InquiryRepository) Update(ctx context.Context, id primitive.ObjectID, update InquiryUpdate) (*models.Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inquiry models.Inquiry
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": buildInquirySet(update, time.Now())}, opts).Decode(&inquiry)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrInquiryNotFound
		}
		logger.Error().Err(err).Str("inquiryID", id.Hex()).Msg("Error updating inquiry")
		return nil, fmt.Errorf("error updating inquiry: %w", err)
	}
	return &inquiry, nil
}

// Delete removes an inquiry
func (r *InquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrInquiryNotFound
	}
	return nil
}

// ExistsByPhoneSince reports whether an inquiry from phone was created at or
// after since
func (r *InquiryRepository) ExistsByPhoneSince(ctx context.Context, phone string, since time.Time) (bool, error) {
	filter := bson.M{"phone": phone, "createdAt": bson.M{"$gte": since}}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking recent inquiries: %w", err)
	}
	return count > 0, nil
}
