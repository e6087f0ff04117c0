package helpers

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseSort converts a comma separated sort expression such as
// "-createdAt,title" into a bson.D. Fields not present in allowed are
// ignored. The fallback is returned when nothing usable remains.
func ParseSort(expr string, allowed map[string]bool, fallback bson.D) bson.D {
	var sort bson.D
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dir := 1
		switch part[0] {
		case '-':
			dir = -1
			part = part[1:]
		case '+':
			part = part[1:]
		}
		if !allowed[part] {
			continue
		}
		sort = append(sort, bson.E{Key: part, Value: dir})
	}
	if len(sort) == 0 {
		return fallback
	}
	return sort
}

// ContainsRegex builds a case insensitive regex matching term literally
func ContainsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(term)), Options: "i"}
}
