package dberrors

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKeyError reports whether err is a MongoDB E11000 duplicate key error
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsDuplicateIndexError reports whether err is a duplicate key error raised
// by the named unique index
func IsDuplicateIndexError(err error, indexName string) bool {
	if !mongo.IsDuplicateKeyError(err) {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if strings.Contains(e.Message, indexName) {
				return true
			}
		}
		return false
	}
	return strings.Contains(err.Error(), indexName)
}

// IsNotFound reports whether err means the query matched no document
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
