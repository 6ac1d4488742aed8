package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/satriajanaka/go-auth-scaffold/internal/domain/entity"
	"github.com/satriajanaka/go-auth-scaffold/internal/domain/repository"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown identifier and a
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// Service implements login credential verification and signup over the
// account repository. It is read-mostly and holds no per-request state.
type Service struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repository.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// Authenticate looks up the account whose username or email exactly
// matches credential and validates the password against its bcrypt
// hash. A failed lookup is treated the same as a wrong password; the
// returned error never says which part was wrong.
func (s *Service) Authenticate(ctx context.Context, credential, password string) (*entity.User, error) {
	u, err := s.Repo.GetByCredential(ctx, credential)
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Warn("credential lookup failed")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Signup hashes the password and creates the account. A duplicate
// username or email surfaces as ErrUserExists.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// GetCurrentUser re-fetches an account by the id embedded in a session
// token, so restored identity reflects current account state.
func (s *Service) GetCurrentUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, repository.ErrNotFound
	}
	return u, nil
}
