package message

import (
	"context"
	"testing"

	"portfolio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageRepo) List(ctx context.Context) ([]*domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMessageService_Create(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Message) bool {
		return m.Name == "Jordan" && !m.IsRead
	})).Return(nil)

	m, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})

	require.NoError(t, err)
	assert.False(t, m.IsRead)
	repo.AssertExpectations(t)
}

func TestMessageService_Create_BlankFields(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:    "   ",
		Email:   "jordan@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestMessageService_Create_BadEmail(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Jordan",
		Email:   "not-an-email",
		Subject: "Hello",
		Message: "Nice site",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestMessageService_MarkRead_NotFound(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	repo.On("MarkRead", mock.Anything, int64(42)).Return(gorm.ErrRecordNotFound)

	_, err := svc.MarkRead(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageService_MarkRead_ReturnsUpdatedMessage(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	repo.On("MarkRead", mock.Anything, int64(7)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Message{ID: 7, IsRead: true}, nil)

	m, err := svc.MarkRead(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, m.IsRead)
}

func TestMessageService_Delete_NotFound(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, int64(9)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrNotFound)
}
