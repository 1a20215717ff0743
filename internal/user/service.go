package user

import (
	"context"
	"errors"
	"fmt"

	"hobbiesapi/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new account with a bcrypt hash of plainPassword. The
// uid must not be taken.
func (s *Service) Register(ctx context.Context, u User, plainPassword string) (User, error) {
	_, err := s.repo.GetByUID(ctx, u.UID)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hashed, err := crypto.HashPassword(plainPassword)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed

	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByUID(ctx context.Context, uid string) (User, error) {
	return s.repo.GetByUID(ctx, uid)
}
