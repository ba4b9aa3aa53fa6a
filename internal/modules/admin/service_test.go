package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"portfolio/internal/domain"
)

// Mock admin repository implementing the interface
type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 1
	}
	return args.Error(0)
}

func (m *mockAdminRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) UpdateUsername(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// Mock token issuer
type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(adminID int64) (string, error) {
	args := m.Called(adminID)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Setup_Success(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, jwt, "setup-secret")

	admin, err := service.Setup(context.Background(), SetupRequest{
		Username: "admin",
		Password: "correct horse battery",
		SetupKey: "setup-secret",
	})

	assert.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)

	repo.AssertExpectations(t)
}

func TestService_Setup_WrongKey(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	service := NewService(repo, jwt, "setup-secret")

	_, err := service.Setup(context.Background(), SetupRequest{
		Username: "admin",
		Password: "whatever12",
		SetupKey: "guessed-wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidSetupKey)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Setup_AlreadyExists(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	repo.On("Count", mock.Anything).Return(int64(1), nil)

	service := NewService(repo, jwt, "setup-secret")

	_, err := service.Setup(context.Background(), SetupRequest{
		Username: "second",
		Password: "whatever12",
		SetupKey: "setup-secret",
	})

	assert.ErrorIs(t, err, ErrAdminExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	stored := &domain.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashOf(t, "securepass123"),
	}
	repo.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)
	jwt.On("GenerateToken", int64(1)).Return("fake-jwt-token", nil)

	service := NewService(repo, jwt, "setup-secret")

	result, err := service.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "securepass123",
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "fake-jwt-token", result.Token)
	assert.Equal(t, int64(1), result.Admin.ID)

	repo.AssertExpectations(t)
	jwt.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	stored := &domain.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashOf(t, "securepass123"),
	}
	repo.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)

	service := NewService(repo, jwt, "setup-secret")

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_UnknownUser(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, jwt, "setup-secret")

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "anything",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdatePassword_WrongCurrent(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	stored := &domain.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashOf(t, "old-password1"),
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)

	service := NewService(repo, jwt, "setup-secret")

	err := service.UpdatePassword(context.Background(), 1, UpdatePasswordRequest{
		CurrentPassword: "wrong-guess",
		NewPassword:     "new-password1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	// the stored hash must stay untouched
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdatePassword_Success(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	stored := &domain.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashOf(t, "old-password1"),
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
	repo.On("UpdatePassword", mock.Anything, int64(1), mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password1")) == nil
	})).Return(nil)

	service := NewService(repo, jwt, "setup-secret")

	err := service.UpdatePassword(context.Background(), 1, UpdatePasswordRequest{
		CurrentPassword: "old-password1",
		NewPassword:     "new-password1",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateUsername_Taken(t *testing.T) {
	repo := new(mockAdminRepo)
	jwt := new(mockTokenIssuer)

	other := &domain.Admin{ID: 2, Username: "taken"}
	repo.On("GetByUsername", mock.Anything, "taken").Return(other, nil)

	service := NewService(repo, jwt, "setup-secret")

	_, err := service.UpdateUsername(context.Background(), 1, UpdateUsernameRequest{Username: "taken"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	repo.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
}
