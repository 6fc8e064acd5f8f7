package services

import (
	"context"

	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/repositories"
)

// UserService exposes stored identities for inspection
type UserService interface {
	List(ctx context.Context) ([]models.UserIdentity, error)
}

type userService struct {
	users repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

// List returns every stored identity. AccessToken is excluded from JSON.
func (s *userService) List(ctx context.Context) ([]models.UserIdentity, error) {
	return s.users.GetAll(ctx)
}
