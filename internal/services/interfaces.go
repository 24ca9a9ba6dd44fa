package services

import (
	"context"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Request bodies are defined next to their validation rules.
type CreateSubjectRequest = validator.SubjectCreateRequest
type CreateLessonRequest = validator.LessonCreateRequest
type UpdateLessonRequest = validator.LessonUpdateRequest
type CreateUserRequest = validator.UserCreateRequest
type UpdateProfileRequest = validator.ProfileUpdateRequest

// ===== SERVICE INTERFACES =====

type SubjectService interface {
	Create(ctx context.Context, req *CreateSubjectRequest) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByID(ctx context.Context, id string) (*models.Subject, error)
	Update(ctx context.Context, id string, req *CreateSubjectRequest) (*models.Subject, error)
	Delete(ctx context.Context, id string) error
}

type LessonService interface {
	Create(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error)
	GetAll(ctx context.Context) ([]*models.Lesson, error)
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	GetBySubject(ctx context.Context, subjectID string) ([]*models.Lesson, error)
	Update(ctx context.Context, id string, req *UpdateLessonRequest) (*models.Lesson, error)
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, req *CreateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, email string, req *UpdateProfileRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// ServiceManager bundles the entity services for handler wiring.
type ServiceManager interface {
	Subject() SubjectService
	Lesson() LessonService
	User() UserService
}
