package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

// MongoRepository implements the main Repository interface on top of a
// mongo database with one collection per entity.
type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database

	user    repositories.UserRepository
	subject repositories.SubjectRepository
	lesson  repositories.LessonRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	Client   *mongo.Client
	Database string
}

// NewMongoRepository creates a new repository manager with all sub-repositories
func NewMongoRepository(config RepositoryConfig) *MongoRepository {
	db := config.Client.Database(config.Database)

	return &MongoRepository{
		client:  config.Client,
		db:      db,
		user:    NewUserMongoDB(db),
		subject: NewSubjectMongoDB(db),
		lesson:  NewLessonMongoDB(db),
	}
}

func (r *MongoRepository) User() repositories.UserRepository {
	return r.user
}

func (r *MongoRepository) Subject() repositories.SubjectRepository {
	return r.subject
}

func (r *MongoRepository) Lesson() repositories.LessonRepository {
	return r.lesson
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the data model relies on:
// users.email and subjects.title reject duplicates, lessons.subjectId
// backs the by-subject query.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	users := r.db.Collection(models.User{}.CollectionName())
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}

	subjects := r.db.Collection(models.Subject{}.CollectionName())
	if _, err := subjects.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create subjects.title index: %w", err)
	}

	lessons := r.db.Collection(models.Lesson{}.CollectionName())
	if _, err := lessons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "subjectId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create lessons.subjectId index: %w", err)
	}

	return nil
}

// repositoryManager implements repositories.RepositoryManager.
type repositoryManager struct {
	repo *MongoRepository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{repo: NewMongoRepository(config)}
}

func (m *repositoryManager) Initialize(ctx context.Context) error {
	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return m.repo.EnsureIndexes(ctx)
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	return m.repo.Close(ctx)
}
