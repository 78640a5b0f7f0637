package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

// MockUserStore is a mock for UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ UserStore = (*MockUserStore)(nil)

func validUser() *models.User {
	return &models.User{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana.torres@example.com",
		Phone:     "+34600111222",
		BirthDate: time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserService_CreateUser_NormalizesInput(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	user := validUser()
	user.FirstName = "  Ana "
	user.Email = " Ana.Torres@Example.COM "

	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := svc.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.FirstName)
	assert.Equal(t, "ana.torres@example.com", user.Email)
	store.AssertExpectations(t)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.User)
	}{
		{"blank first name", func(u *models.User) { u.FirstName = "   " }},
		{"single letter last name", func(u *models.User) { u.LastName = "T" }},
		{"malformed email", func(u *models.User) { u.Email = "not-an-email" }},
		{"malformed phone", func(u *models.User) { u.Phone = "call me" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockUserStore)
			svc := NewUserService(store)

			user := validUser()
			tt.mutate(user)

			err := svc.CreateUser(context.Background(), user)

			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	store.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)

	err := svc.CreateUser(context.Background(), validUser())

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUserService_GetUserByID(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	want := validUser()
	want.ID = 42
	store.On("GetByID", mock.Anything, int64(42)).Return(want, nil)

	got, err := svc.GetUserByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_GetUserByID_InvalidID(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	got, err := svc.GetUserByID(context.Background(), 0)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUserService_GetAllUsers_EmptyIsNotNil(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	store.On("GetAll", mock.Anything).Return(nil, nil)

	got, err := svc.GetAllUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	user := validUser()
	user.ID = 42
	store.On("Update", mock.Anything, mock.Anything).Return(apperrors.ErrUserNotFound)

	err := svc.UpdateUser(context.Background(), user)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	store.On("Delete", mock.Anything, int64(42)).Return(nil)

	assert.NoError(t, svc.DeleteUser(context.Background(), 42))
	store.AssertExpectations(t)
}

func TestUserService_DeleteUser_AbsentUser(t *testing.T) {
	store := new(MockUserStore)
	svc := NewUserService(store)

	store.On("Delete", mock.Anything, int64(99)).Return(apperrors.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
