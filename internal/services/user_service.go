package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
)

type userService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewUserService(repo repositories.Repository, logger *slog.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	s.logger.Info("Creating user", "email", req.Email, "role", req.Role)

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		JoinDate: &joinDate,
	}
	if req.Auth0ID != "" {
		user.Auth0ID = req.Auth0ID
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: user with email %s already exists", ErrConflict, req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.User().GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: user with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: user with email %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Update is the admin/mentor full update: email, name and role are
// overwritten unconditionally. Auth0ID is never touched by this path.
func (s *userService) Update(ctx context.Context, id string, req *CreateUserRequest) (*models.User, error) {
	s.logger.Info("Updating user", "user_id", id)

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: user with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Email = req.Email
	user.Name = req.Name
	user.Role = req.Role

	if err := s.repo.User().Update(ctx, user); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: user with email %s already exists", ErrConflict, req.Email)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// UpdateProfile is the self-service update, addressed by the caller's email
// claim. Name is applied only when provided and non-blank; Bio and
// AvatarURL accept any provided value. Email, role and Auth0ID are never
// touched here.
func (s *userService) UpdateProfile(ctx context.Context, email string, req *UpdateProfileRequest) (*models.User, error) {
	s.logger.Info("Updating user profile", "email", email)

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: user with email %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete reports not-found for an absent id instead of silently succeeding.
func (s *userService) Delete(ctx context.Context, id string) error {
	s.logger.Info("Deleting user", "user_id", id)

	exists, err := s.repo.User().ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user with id %s", ErrNotFound, id)
	}

	if err := s.repo.User().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
