package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	userRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/user"
	"github.com/m04kA/PGS-BookingService/internal/service/users"
	"github.com/m04kA/PGS-BookingService/internal/service/users/models"
	"github.com/m04kA/PGS-BookingService/pkg/ptr"
)

// ---- mocks -----------------------------------------------------------------

type mockUserRepo struct {
	create     func(ctx context.Context, u *domain.User) (*domain.User, error)
	getByEmail func(ctx context.Context, email string) (*domain.User, error)
	list       func(ctx context.Context) ([]*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.create(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmail(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return m.list(ctx)
}

type mockTokenIssuer struct {
	createToken func(userID int64, isAdmin bool) (string, error)
}

func (m *mockTokenIssuer) CreateToken(userID int64, isAdmin bool) (string, error) {
	return m.createToken(userID, isAdmin)
}

type noopLogger struct{}

func (noopLogger) Info(format string, args ...any)  {}
func (noopLogger) Warn(format string, args ...any)  {}
func (noopLogger) Error(format string, args ...any) {}

var (
	_ users.UserRepository = (*mockUserRepo)(nil)
	_ users.TokenIssuer    = (*mockTokenIssuer)(nil)
)

// ---- Register --------------------------------------------------------------

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:         ptr.Ptr("Иван"),
		Email:        "ivan@example.com",
		MobileNumber: 79001234567,
		Password:     "secret123",
	}
}

func TestRegister_Success(t *testing.T) {
	var stored *domain.User
	repo := &mockUserRepo{
		create: func(_ context.Context, u *domain.User) (*domain.User, error) {
			stored = u
			created := *u
			created.ID = 1
			return &created, nil
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ivan@example.com", resp.Email)
	assert.False(t, resp.IsAdmin)

	// В хранилище уходит bcrypt-хеш, а не пароль
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.RegisterRequest)
	}{
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{name: "missing mobile", mutate: func(r *models.RegisterRequest) { r.MobileNumber = 0 }},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
					t.Fatal("Create should not be called")
					return nil, nil
				},
			}
			svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

			req := registerRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, users.ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, userRepo.ErrEmailTaken
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_DuplicateMobile(t *testing.T) {
	repo := &mockUserRepo{
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, userRepo.ErrMobileTaken
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, users.ErrMobileTaken)
}

// ---- Login -----------------------------------------------------------------

func storedUser(t *testing.T, password string, isAdmin bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (*domain.User, error) {
			assert.Equal(t, "ivan@example.com", email)
			return storedUser(t, "secret123", true), nil
		},
	}
	tokens := &mockTokenIssuer{
		createToken: func(userID int64, isAdmin bool) (string, error) {
			assert.Equal(t, int64(1), userID)
			assert.True(t, isAdmin)
			return "signed-token", nil
		},
	}
	svc := users.NewService(repo, tokens, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", resp.Token)
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "ivan@example.com", resp.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return storedUser(t, "secret123", false), nil
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Несуществующий email неотличим от неверного пароля
	repo := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, userRepo.ErrUserNotFound
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

// ---- List ------------------------------------------------------------------

func TestList_ExcludesPasswordHash(t *testing.T) {
	repo := &mockUserRepo{
		list: func(_ context.Context) ([]*domain.User, error) {
			return []*domain.User{storedUser(t, "secret123", false)}, nil
		},
	}
	svc := users.NewService(repo, &mockTokenIssuer{}, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "ivan@example.com", resp.Users[0].Email)
}
