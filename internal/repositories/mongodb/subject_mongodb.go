package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

type subjectMongoDB struct {
	collection *mongo.Collection
}

func NewSubjectMongoDB(db *mongo.Database) repositories.SubjectRepository {
	return &subjectMongoDB{
		collection: db.Collection(models.Subject{}.CollectionName()),
	}
}

func (r *subjectMongoDB) Create(ctx context.Context, subject *models.Subject) error {
	if subject.ID.IsZero() {
		subject.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, subject); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert subject: %w", err)
	}
	return nil
}

func (r *subjectMongoDB) GetByID(ctx context.Context, id string) (*models.Subject, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	subject := &models.Subject{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(subject); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subject by id: %w", err)
	}
	return subject, nil
}

func (r *subjectMongoDB) GetAll(ctx context.Context) ([]*models.Subject, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects := []*models.Subject{}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects: %w", err)
	}
	return subjects, nil
}

func (r *subjectMongoDB) Update(ctx context.Context, subject *models.Subject) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": subject.ID}, subject)
	if err != nil {
		return mapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete is a store-level no-op when the id is absent or malformed; the
// subject service does not require the document to exist.
func (r *subjectMongoDB) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}

func (r *subjectMongoDB) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to count subjects: %w", err)
	}
	return count > 0, nil
}

func (r *subjectMongoDB) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count subjects: %w", err)
	}
	return count, nil
}
