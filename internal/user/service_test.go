package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"storefront-be/internal/auth"
	"storefront-be/internal/permission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, name, password string, perms []permission.Permission) (*User, error) {
	args := m.Called(ctx, email, name, password, perms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByResetToken(ctx context.Context, token string, notBefore time.Time) (*User, error) {
	args := m.Called(ctx, token, notBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	args := m.Called(ctx, userID, token, expiry)
	return args.Error(0)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, userID uint, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

func (m *MockRepository) UpdatePermissions(ctx context.Context, userID uint, perms []permission.Permission) (*User, error) {
	args := m.Called(ctx, userID, perms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

func newTestService(repo Repository, mailer *MockSender) Service {
	return NewService(repo, auth.NewSessions("test-secret"), mailer, "http://localhost:7777")
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("LowercasesEmailAndDefaultsPermissions", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("Create", ctx, "john@example.com", "John", mock.AnythingOfType("string"),
			[]permission.Permission{permission.User}).
			Run(func(args mock.Arguments) {
				hashed := args.String(3)
				assert.True(t, auth.CheckPasswordHash("secret123", hashed))
			}).
			Return(&User{ID: 1, Email: "john@example.com"}, nil)

		token, u, err := svc.Signup(ctx, "John@Example.COM", "John", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("Create", ctx, "john@example.com", "John", mock.Anything, mock.Anything).
			Return(nil, ErrEmailExists)

		_, _, err := svc.Signup(ctx, "john@example.com", "John", "secret123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Signin(t *testing.T) {
	ctx := context.Background()
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com", Password: hashed}, nil)

		token, u, err := svc.Signin(ctx, "John@Example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("FindByEmail", ctx, "missing@example.com").
			Return(nil, ErrUserNotFound)

		_, _, err := svc.Signin(ctx, "missing@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com", Password: hashed}, nil)

		_, _, err := svc.Signin(ctx, "john@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestService_RequestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresTokenAndMailsLink", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := new(MockSender)
		svc := newTestService(repo, mailer)

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com"}, nil)

		var storedToken string
		repo.On("SetResetToken", ctx, uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				storedToken = args.String(2)
				expiry := args.Get(3).(time.Time)
				assert.Len(t, storedToken, 40)
				assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
			}).
			Return(nil)

		mailer.On("Send", ctx, "john@example.com", "Your Password Reset Token", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				body := args.String(3)
				assert.Contains(t, body, "http://localhost:7777/reset?resetToken="+storedToken)
			}).
			Return(nil)

		err := svc.RequestReset(ctx, "John@example.com")
		require.NoError(t, err)
		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := new(MockSender)
		svc := newTestService(repo, mailer)

		repo.On("FindByEmail", ctx, "missing@example.com").
			Return(nil, ErrUserNotFound)

		err := svc.RequestReset(ctx, "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("MailFailureSurfaces", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := new(MockSender)
		svc := newTestService(repo, mailer)

		repo.On("FindByEmail", ctx, "john@example.com").
			Return(&User{ID: 1, Email: "john@example.com"}, nil)
		repo.On("SetResetToken", ctx, uint(1), mock.Anything, mock.Anything).Return(nil)
		mailer.On("Send", ctx, "john@example.com", mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		err := svc.RequestReset(ctx, "john@example.com")
		assert.Error(t, err)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("FindByResetToken", ctx, "tok123", mock.AnythingOfType("time.Time")).
			Return(&User{ID: 1, Email: "john@example.com"}, nil)
		repo.On("UpdatePassword", ctx, uint(1), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				assert.True(t, auth.CheckPasswordHash("newpass123", args.String(2)))
			}).
			Return(nil)

		token, u, err := svc.ResetPassword(ctx, "tok123", "newpass123", "newpass123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("ConfirmMismatch", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		_, _, err := svc.ResetPassword(ctx, "tok123", "newpass123", "different")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		repo.AssertNotCalled(t, "FindByResetToken")
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		repo.On("FindByResetToken", ctx, "stale", mock.AnythingOfType("time.Time")).
			Return(nil, ErrInvalidResetToken)

		_, _, err := svc.ResetPassword(ctx, "stale", "newpass123", "newpass123")
		assert.ErrorIs(t, err, ErrInvalidResetToken)
		repo.AssertNotCalled(t, "UpdatePassword")
	})
}

func TestService_UpdatePermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("OverwritesSet", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		perms := []permission.Permission{permission.Admin, permission.ItemDelete}
		repo.On("UpdatePermissions", ctx, uint(2), perms).
			Return(&User{ID: 2, Permissions: perms}, nil)

		u, err := svc.UpdatePermissions(ctx, 2, perms)
		require.NoError(t, err)
		assert.Equal(t, perms, u.Permissions)
	})

	t.Run("RejectsUnknownLabel", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockSender))

		_, err := svc.UpdatePermissions(ctx, 2, []permission.Permission{"SUPERADMIN"})
		assert.ErrorIs(t, err, ErrUnknownPermission)
		assert.True(t, strings.Contains(err.Error(), "SUPERADMIN"))
		repo.AssertNotCalled(t, "UpdatePermissions")
	})
}
