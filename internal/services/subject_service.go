package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

type subjectService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewSubjectService(repo repositories.Repository, logger *slog.Logger) SubjectService {
	return &subjectService{
		repo:   repo,
		logger: logger,
	}
}

func (s *subjectService) Create(ctx context.Context, req *CreateSubjectRequest) (*models.Subject, error) {
	s.logger.Info("Creating subject", "title", req.Title)

	subject := &models.Subject{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Subject().Create(ctx, subject); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: subject title already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return subject, nil
}

func (s *subjectService) GetAll(ctx context.Context) ([]*models.Subject, error) {
	return s.repo.Subject().GetAll(ctx)
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.repo.Subject().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: subject with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return subject, nil
}

// Update overwrites both fields unconditionally; there is no partial merge
// for subjects.
func (s *subjectService) Update(ctx context.Context, id string, req *CreateSubjectRequest) (*models.Subject, error) {
	s.logger.Info("Updating subject", "subject_id", id)

	subject, err := s.repo.Subject().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: subject with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	subject.Title = req.Title
	subject.Description = req.Description

	if err := s.repo.Subject().Update(ctx, subject); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: subject title already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	return subject, nil
}

// Delete delegates to the store without an existence check; deleting an
// absent subject is a no-op, not an error.
func (s *subjectService) Delete(ctx context.Context, id string) error {
	s.logger.Info("Deleting subject", "subject_id", id)

	if err := s.repo.Subject().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}
