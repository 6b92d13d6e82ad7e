package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo       repository.UserRepository
	passwordHasher *auth.PasswordHasher
}

func NewService(userRepo repository.UserRepository, passwordHasher *auth.PasswordHasher) *Service {
	return &Service{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// UpdateInput fields left nil keep their stored value.
type UpdateInput struct {
	Name     *string
	Password *string
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, input UpdateInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	name := user.Name
	if input.Name != nil {
		name = *input.Name
	}

	hash := user.PasswordHash
	if input.Password != nil {
		hash, err = s.passwordHasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
	}

	user.Update(name, hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}
