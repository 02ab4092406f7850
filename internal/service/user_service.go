package service

import (
	"context"
	"errors"

	"github.com/jobboard/jobboard-api/internal/auth"
	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// UserCreateInput describes user registration payload.
type UserCreateInput struct {
	Username       string
	Password       string
	FirstName      string
	LastName       string
	Email          string
	Photo          *string
	CurrentCompany *string
}

// UserUpdateInput describes a partial user update. Nil fields are unchanged.
type UserUpdateInput struct {
	Password       *string
	FirstName      *string
	LastName       *string
	Email          *string
	Photo          *string
	CurrentCompany *string
}

// UserService manages user accounts.
type UserService struct {
	users      repository.UserRepository
	apps       repository.ApplicationRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, apps repository.ApplicationRepository, bcryptCost int) *UserService {
	return &UserService{users: users, apps: apps, bcryptCost: bcryptCost}
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, in UserCreateInput) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       in.Username,
		PasswordHash:   hash,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Photo:          in.Photo,
		CurrentCompany: in.CurrentCompany,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(MsgUsernameExists, nil)
		}
		return nil, companyReference(err)
	}
	return user, nil
}

// List returns a page of users.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFound(err, "User")
	}
	return user, nil
}

// Update applies a partial update, re-hashing the password when present.
func (s *UserService) Update(ctx context.Context, username string, in UserUpdateInput) (*domain.User, error) {
	patch := domain.UserPatch{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Photo:          in.Photo,
		CurrentCompany: in.CurrentCompany,
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, username, patch)
	if err != nil {
		return nil, companyReference(notFound(err, "User"))
	}
	return user, nil
}

// Delete removes a user and returns the removed record.
func (s *UserService) Delete(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.Delete(ctx, username)
	if err != nil {
		return nil, notFound(err, "User")
	}
	return user, nil
}

// Applications lists the jobs a user applied for.
func (s *UserService) Applications(ctx context.Context, username string) ([]domain.Application, error) {
	return s.apps.ListByUsername(ctx, username)
}
