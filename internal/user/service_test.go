package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shop-microservices/internal/user"
)

type mockRepository struct {
	createFunc     func(ctx context.Context, u *user.User) (int64, error)
	listFunc       func(ctx context.Context) ([]user.User, error)
	getByIDFunc    func(ctx context.Context, id int64) (*user.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	updateFunc     func(ctx context.Context, u *user.User) error
	deleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	return m.createFunc(ctx, u)
}

func (m *mockRepository) List(ctx context.Context) ([]user.User, error) {
	return m.listFunc(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockRepository) Update(ctx context.Context, u *user.User) error {
	return m.updateFunc(ctx, u)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

func TestService_CreateUser_HashesPassword(t *testing.T) {
	var stored *user.User
	repo := &mockRepository{
		createFunc: func(ctx context.Context, u *user.User) (int64, error) {
			stored = u
			return 1, nil
		},
	}
	svc := user.NewService(repo)

	created, err := svc.CreateUser(context.Background(), &user.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "p@ssw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	require.NotNil(t, stored)
	assert.NotEqual(t, "p@ssw0rd", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("p@ssw0rd")))
}

func TestService_CreateUser_EmptyPassword(t *testing.T) {
	svc := user.NewService(&mockRepository{})

	_, err := svc.CreateUser(context.Background(), &user.User{Username: "a", Email: "a@x.com"})
	assert.Error(t, err)
}

func TestService_CreateUser_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, u *user.User) (int64, error) {
			return 0, errors.New("disk full")
		},
	}
	svc := user.NewService(repo)

	_, err := svc.CreateUser(context.Background(), &user.User{Username: "a", Email: "a@x.com", Password: "p"})
	assert.Error(t, err)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	require.NoError(t, err)

	known := &user.User{ID: 5, Username: "alice", Email: "alice@x.com", Password: string(hash)}

	repo := &mockRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, user.ErrNotFound
		},
	}
	svc := user.NewService(repo)

	t.Run("success", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "alice@x.com", "correct")
		require.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice@x.com", "wrong")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@x.com", "correct")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestService_UpdateUser_NotFound(t *testing.T) {
	repo := &mockRepository{
		updateFunc: func(ctx context.Context, u *user.User) error {
			return user.ErrNotFound
		},
	}
	svc := user.NewService(repo)

	err := svc.UpdateUser(context.Background(), &user.User{ID: 999, Username: "x", Email: "x@x.com", Password: "p"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}
