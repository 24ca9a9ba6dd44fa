package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

type lessonService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewLessonService(repo repositories.Repository, logger *slog.Logger) LessonService {
	return &lessonService{
		repo:   repo,
		logger: logger,
	}
}

func (s *lessonService) Create(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error) {
	s.logger.Info("Creating lesson", "title", req.Title, "subject_id", req.SubjectID)

	exists, err := s.repo.Subject().ExistsByID(ctx, req.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subject: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: subject with id %s", ErrNotFound, req.SubjectID)
	}

	lesson := &models.Lesson{
		Title:       req.Title,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		ContentType: req.ContentType,
		SubjectID:   req.SubjectID,
	}

	if err := s.repo.Lesson().Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	return lesson, nil
}

func (s *lessonService) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	return s.repo.Lesson().GetAll(ctx)
}

func (s *lessonService) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, err := s.repo.Lesson().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: lesson with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

func (s *lessonService) GetBySubject(ctx context.Context, subjectID string) ([]*models.Lesson, error) {
	return s.repo.Lesson().GetBySubjectID(ctx, subjectID)
}

// Update applies the per-field merge rules: Title and Content only when
// provided and not blank, VideoURL for any provided value (empty string
// clears it), ContentType and SubjectID for any provided value.
func (s *lessonService) Update(ctx context.Context, id string, req *UpdateLessonRequest) (*models.Lesson, error) {
	s.logger.Info("Updating lesson", "lesson_id", id)

	if req.SubjectID != nil {
		exists, err := s.repo.Subject().ExistsByID(ctx, *req.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check subject: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: subject with id %s", ErrNotFound, *req.SubjectID)
		}
	}

	lesson, err := s.repo.Lesson().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: lesson with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		lesson.Title = *req.Title
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		lesson.Content = *req.Content
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.ContentType != nil {
		lesson.ContentType = *req.ContentType
	}
	if req.SubjectID != nil {
		lesson.SubjectID = *req.SubjectID
	}

	if err := s.repo.Lesson().Update(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	return lesson, nil
}

// Delete checks existence first so an absent id reports not-found instead
// of silently succeeding.
func (s *lessonService) Delete(ctx context.Context, id string) error {
	s.logger.Info("Deleting lesson", "lesson_id", id)

	exists, err := s.repo.Lesson().ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check lesson: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: lesson with id %s", ErrNotFound, id)
	}

	if err := s.repo.Lesson().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	return nil
}
