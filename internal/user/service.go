package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on login when no user matches the email
// or the password does not verify. The two cases are deliberately not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateUser stores a new user. The plaintext password is replaced with its
// bcrypt hash before it reaches the repository.
func (s *service) CreateUser(ctx context.Context, user *User) (*User, error) {
	if user.Password == "" {
		return nil, errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create user in repository")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users in repository")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *service) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int64("user_id", id).Msg("Failed to get user in repository")
		return nil, fmt.Errorf("failed to get user by id %d: %w", id, err)
	}
	return u, nil
}

// UpdateUser is a full replace; the password field is required and is
// re-hashed on every update.
func (s *service) UpdateUser(ctx context.Context, user *User) error {
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to update user in repository")
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("user_id", id).Msg("Failed to delete user in repository")
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// Authenticate verifies a presented password against the stored bcrypt hash
// and returns the matching user.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
