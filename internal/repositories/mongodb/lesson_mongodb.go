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

type lessonMongoDB struct {
	collection *mongo.Collection
}

func NewLessonMongoDB(db *mongo.Database) repositories.LessonRepository {
	return &lessonMongoDB{
		collection: db.Collection(models.Lesson{}.CollectionName()),
	}
}

func (r *lessonMongoDB) Create(ctx context.Context, lesson *models.Lesson) error {
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, lesson); err != nil {
		return fmt.Errorf("failed to insert lesson: %w", err)
	}
	return nil
}

func (r *lessonMongoDB) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	lesson := &models.Lesson{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(lesson); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lesson by id: %w", err)
	}
	return lesson, nil
}

func (r *lessonMongoDB) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	return r.find(ctx, bson.M{})
}

func (r *lessonMongoDB) GetBySubjectID(ctx context.Context, subjectID string) ([]*models.Lesson, error) {
	return r.find(ctx, bson.M{"subjectId": subjectID})
}

func (r *lessonMongoDB) find(ctx context.Context, filter bson.M) ([]*models.Lesson, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	lessons := []*models.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *lessonMongoDB) Update(ctx context.Context, lesson *models.Lesson) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": lesson.ID}, lesson)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *lessonMongoDB) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *lessonMongoDB) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to count lessons: %w", err)
	}
	return count > 0, nil
}
