package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-be/internal/auth"
	"storefront-be/internal/graph/model"
	"storefront-be/internal/permission"
	"storefront-be/internal/transport"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func httpCtx(t *testing.T) (context.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	return transport.WithHTTP(context.Background(), req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestMutation_Signup(t *testing.T) {
	t.Run("SetsSessionCookie", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, rec := httpCtx(t)

		userSvc.On("Signup", mock.Anything, "john@example.com", "John", "secret123").
			Return("jwt-token", &user.User{ID: 1, Email: "john@example.com", Name: "John"}, nil)

		payload, err := m.Signup(ctx, model.SignupInput{
			Email:    "john@example.com",
			Name:     "John",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", *payload.Token)
		assert.Equal(t, "1", payload.User.ID)

		c := sessionCookie(t, rec)
		require.NotNil(t, c)
		assert.Equal(t, "jwt-token", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, rec := httpCtx(t)

		userSvc.On("Signup", mock.Anything, "john@example.com", "John", "secret123").
			Return("", nil, user.ErrEmailExists)

		_, err := m.Signup(ctx, model.SignupInput{
			Email:    "john@example.com",
			Name:     "John",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
		assert.Nil(t, sessionCookie(t, rec))
	})
}

func TestMutation_Signin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, rec := httpCtx(t)

		userSvc.On("Signin", mock.Anything, "john@example.com", "secret123").
			Return("jwt-token", &user.User{ID: 1, Email: "john@example.com"}, nil)

		payload, err := m.Signin(ctx, model.SigninInput{
			Email:    "john@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "1", payload.User.ID)
		require.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("BadPassword", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, _ := httpCtx(t)

		userSvc.On("Signin", mock.Anything, "john@example.com", "wrong").
			Return("", nil, user.ErrInvalidPassword)

		_, err := m.Signin(ctx, model.SigninInput{
			Email:    "john@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, user.ErrInvalidPassword)
	})
}

func TestMutation_Signout(t *testing.T) {
	m := &mutationResolver{&Resolver{}}
	ctx, rec := httpCtx(t)

	msg, err := m.Signout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Goodbye!", *msg.Message)

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestMutation_RequestReset(t *testing.T) {
	userSvc := new(MockUserService)
	m := &mutationResolver{&Resolver{UserSvc: userSvc}}
	ctx := context.Background()

	userSvc.On("RequestReset", mock.Anything, "john@example.com").Return(nil)

	msg, err := m.RequestReset(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Contains(t, *msg.Message, "Check your email")
}

func TestMutation_ResetPassword(t *testing.T) {
	t.Run("SignsCallerIn", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, rec := httpCtx(t)

		userSvc.On("ResetPassword", mock.Anything, "tok123", "newpass", "newpass").
			Return("jwt-token", &user.User{ID: 1}, nil)

		payload, err := m.ResetPassword(ctx, model.ResetPasswordInput{
			ResetToken:      "tok123",
			Password:        "newpass",
			ConfirmPassword: "newpass",
		})
		require.NoError(t, err)
		assert.Equal(t, "1", payload.User.ID)
		require.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("InvalidToken", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx, _ := httpCtx(t)

		userSvc.On("ResetPassword", mock.Anything, "stale", "newpass", "newpass").
			Return("", nil, user.ErrInvalidResetToken)

		_, err := m.ResetPassword(ctx, model.ResetPasswordInput{
			ResetToken:      "stale",
			Password:        "newpass",
			ConfirmPassword: "newpass",
		})
		assert.ErrorIs(t, err, user.ErrInvalidResetToken)
	})
}

func TestMutation_UpdatePermissions(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{UserSvc: new(MockUserService)}}

		_, err := m.UpdatePermissions(context.Background(), "2", nil)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("CallerWithoutGrantRejected", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: []permission.Permission{permission.User}}, nil)

		_, err := m.UpdatePermissions(ctx, "2", []model.Permission{model.PermissionAdmin})
		assert.ErrorIs(t, err, ErrForbidden)
		userSvc.AssertNotCalled(t, "UpdatePermissions")
	})

	t.Run("AdminOverwritesTargetSet", func(t *testing.T) {
		userSvc := new(MockUserService)
		m := &mutationResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: []permission.Permission{permission.Admin}}, nil)
		userSvc.On("UpdatePermissions", mock.Anything, uint(2),
			[]permission.Permission{permission.User, permission.ItemDelete}).
			Return(&user.User{ID: 2, Permissions: []permission.Permission{permission.User, permission.ItemDelete}}, nil)

		updated, err := m.UpdatePermissions(ctx, "2",
			[]model.Permission{model.PermissionUser, model.PermissionItemdelete})
		require.NoError(t, err)
		assert.Equal(t, "2", updated.ID)
		assert.Len(t, updated.Permissions, 2)
	})
}

func TestQuery_Me(t *testing.T) {
	t.Run("AnonymousGetsNothing", func(t *testing.T) {
		q := &queryResolver{&Resolver{UserSvc: new(MockUserService)}}

		u, err := q.Me(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("StaleSessionGetsNothing", func(t *testing.T) {
		userSvc := new(MockUserService)
		q := &queryResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 44)

		userSvc.On("GetByID", mock.Anything, uint(44)).
			Return(nil, user.ErrUserNotFound)

		u, err := q.Me(ctx)
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("ReturnsCallerProfile", func(t *testing.T) {
		userSvc := new(MockUserService)
		q := &queryResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Email: "john@example.com", Name: "John",
				Permissions: []permission.Permission{permission.User}}, nil)

		u, err := q.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", u.Email)
		assert.Equal(t, []model.Permission{model.PermissionUser}, u.Permissions)
	})
}

func TestQuery_Users(t *testing.T) {
	t.Run("RequiresAdminOrPermissionUpdate", func(t *testing.T) {
		userSvc := new(MockUserService)
		q := &queryResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: []permission.Permission{permission.User}}, nil)

		_, err := q.Users(ctx)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("ListsAllUsers", func(t *testing.T) {
		userSvc := new(MockUserService)
		q := &queryResolver{&Resolver{UserSvc: userSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: []permission.Permission{permission.PermissionUpdate}}, nil)
		userSvc.On("List", mock.Anything).
			Return([]*user.User{{ID: 1}, {ID: 2}}, nil)

		users, err := q.Users(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}
