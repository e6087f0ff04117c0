package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

func TestBuildInquiryFilter(t *testing.T) {
	assert.Empty(t, buildInquiryFilter(InquiryFilter{}))

	filter := buildInquiryFilter(InquiryFilter{Status: "new", Class: "10th", Subject: "Physics", Priority: "high", Search: "98765"})
	assert.Equal(t, "new", filter["status"])
	assert.Equal(t, "10th", filter["class"])
	assert.Equal(t, "Physics", filter["subject"])
	assert.Equal(t, "high", filter["priority"])

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 3)
}

func TestBuildInquirySet(t *testing.T) {
	now := time.Date(2025, 4, 23, 10, 0, 0, 0, time.UTC)
	status := models.InquiryStatusContacted
	notes := "called back"
	assignee := primitive.NewObjectID()

	set := buildInquirySet(InquiryUpdate{Status: &status, Notes: &notes, AssignedTo: &assignee}, now)

	assert.Equal(t, bson.M{
		"updatedAt":  now,
		"status":     models.InquiryStatusContacted,
		"notes":      "called back",
		"assignedTo": assignee,
	}, set)
}

func TestInquiryRepository_ExistsByPhoneSince(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "test." + models.InquiriesCollection

	mt.Run("recent inquiry", func(mt *mtest.T) {
		repo := &InquiryRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}))

		exists, err := repo.ExistsByPhoneSince(context.Background(), "9876543210", time.Now().Add(-models.DuplicateInquiryWindow))
		require.NoError(mt, err)
		assert.True(mt, exists)
	})

	mt.Run("no recent inquiry", func(mt *mtest.T) {
		repo := &InquiryRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		exists, err := repo.ExistsByPhoneSince(context.Background(), "9876543210", time.Now().Add(-models.DuplicateInquiryWindow))
		require.NoError(mt, err)
		assert.False(mt, exists)
	})
}

func TestInquiryRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns updated document", func(mt *mtest.T) {
		repo := &InquiryRepository{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Rahul Sharma"},
			{Key: "phone", Value: "9876543210"},
			{Key: "status", Value: "contacted"},
		}}))

		status := models.InquiryStatusContacted
		inquiry, err := repo.Update(context.Background(), id, InquiryUpdate{Status: &status})
		require.NoError(mt, err)
		assert.Equal(mt, id, inquiry.ID)
		assert.Equal(mt, models.InquiryStatusContacted, inquiry.Status)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := &InquiryRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(context.Background(), primitive.NewObjectID(), InquiryUpdate{})
		assert.ErrorIs(mt, err, apperrors.ErrInquiryNotFound)
	})
}
