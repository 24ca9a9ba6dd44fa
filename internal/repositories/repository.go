package repositories

import "context"

// Repository aggregates the entity stores of the service.
type Repository interface {
	User() UserRepository
	Subject() SubjectRepository
	Lesson() LessonRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close(ctx context.Context) error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	// Initialize connections and indexes
	Initialize(ctx context.Context) error

	// Get repository instance
	GetRepository() Repository

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
