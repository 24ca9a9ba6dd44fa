package services

import (
	"log/slog"

	"github.com/stellar-compass/learning-service/internal/repositories"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	subjectService SubjectService
	lessonService  LessonService
	userService    UserService
}

// NewServiceManager creates all entity services over a shared repository.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger) ServiceManager {
	return &serviceManager{
		subjectService: NewSubjectService(repo, logger),
		lessonService:  NewLessonService(repo, logger),
		userService:    NewUserService(repo, logger),
	}
}

func (m *serviceManager) Subject() SubjectService {
	return m.subjectService
}

func (m *serviceManager) Lesson() LessonService {
	return m.lessonService
}

func (m *serviceManager) User() UserService {
	return m.userService
}
