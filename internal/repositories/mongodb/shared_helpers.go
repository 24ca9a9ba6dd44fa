package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stellar-compass/learning-service/internal/repositories"
)

// objectIDFromHex parses a path-parameter id into an ObjectID. An id that is
// not valid hex cannot reference any stored document, so it maps to not-found
// rather than to a separate error kind.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repositories.ErrNotFound
	}
	return oid, nil
}

// mapWriteError translates driver errors into repository error kinds.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}
