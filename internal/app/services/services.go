package services

// Services defined in this package:
// - AuthService: staff login, registration, profile and password changes
// - CourseService: course catalogue, editing and enrollment
// - InquiryService: contact form submissions and staff follow-up
// - StatsService: dashboard and per-resource statistics

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

// MsgInvalidID is reported for path IDs that are not ObjectIDs
const MsgInvalidID = "The provided ID is not valid"

// parseObjectID converts a hex path parameter into an ObjectID
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewCustomError(apperrors.ErrInvalidID, MsgInvalidID)
	}
	return oid, nil
}

// round rounds v to the given number of decimals
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
