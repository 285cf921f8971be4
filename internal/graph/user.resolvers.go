package graph

import (
	"context"
	"errors"

	"storefront-be/internal/auth"
	"storefront-be/internal/graph/model"
	"storefront-be/internal/logger"
	"storefront-be/internal/permission"
	"storefront-be/internal/transport"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

// setSessionCookie writes the session cookie when the HTTP response writer
// is reachable from the resolver context.
func setSessionCookie(ctx context.Context, token string) {
	if w := transport.GetResponseWriter(ctx); w != nil {
		auth.SetCookie(w, token)
	}
}

func (r *mutationResolver) Signup(ctx context.Context, input model.SignupInput) (*model.AuthPayload, error) {
	log := logger.FromCtx(ctx)

	token, u, err := r.UserSvc.Signup(ctx, input.Email, input.Name, input.Password)
	if err != nil {
		log.Warn("signup failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	setSessionCookie(ctx, token)

	log.Info("user signed up",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return &model.AuthPayload{
		Token: utils.StrPtr(token),
		User:  mapUserToGraphQL(u),
	}, nil
}

func (r *mutationResolver) Signin(ctx context.Context, input model.SigninInput) (*model.AuthPayload, error) {
	token, u, err := r.UserSvc.Signin(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	setSessionCookie(ctx, token)

	return &model.AuthPayload{
		Token: utils.StrPtr(token),
		User:  mapUserToGraphQL(u),
	}, nil
}

func (r *mutationResolver) Signout(ctx context.Context) (*model.SuccessMessage, error) {
	if w := transport.GetResponseWriter(ctx); w != nil {
		auth.ClearCookie(w)
	}

	return &model.SuccessMessage{Message: utils.StrPtr("Goodbye!")}, nil
}

func (r *mutationResolver) RequestReset(ctx context.Context, email string) (*model.SuccessMessage, error) {
	log := logger.FromCtx(ctx)

	if err := r.UserSvc.RequestReset(ctx, email); err != nil {
		log.Warn("reset request failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return &model.SuccessMessage{Message: utils.StrPtr("Thanks! Check your email for a reset link.")}, nil
}

func (r *mutationResolver) ResetPassword(ctx context.Context, input model.ResetPasswordInput) (*model.AuthPayload, error) {
	token, u, err := r.UserSvc.ResetPassword(ctx, input.ResetToken, input.Password, input.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	setSessionCookie(ctx, token)

	return &model.AuthPayload{
		Token: utils.StrPtr(token),
		User:  mapUserToGraphQL(u),
	}, nil
}

func (r *mutationResolver) UpdatePermissions(ctx context.Context, userID string, permissions []model.Permission) (*model.User, error) {
	log := logger.FromCtx(ctx)

	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := permission.Require(caller.Permissions, permission.Admin, permission.PermissionUpdate); err != nil {
		log.Warn("permission update rejected",
			zap.Uint("caller_id", caller.ID),
			zap.Error(err),
		)
		return nil, errors.Join(ErrForbidden, err)
	}

	targetID, err := utils.ToUint(userID)
	if err != nil {
		return nil, user.ErrUserNotFound
	}

	perms := make([]permission.Permission, len(permissions))
	for i, p := range permissions {
		perms[i] = permission.Permission(p)
	}

	// Full overwrite of the target's set, not a merge.
	updated, err := r.UserSvc.UpdatePermissions(ctx, targetID, perms)
	if err != nil {
		return nil, err
	}

	log.Info("permissions updated",
		zap.Uint("caller_id", caller.ID),
		zap.Uint("target_id", updated.ID),
	)

	return mapUserToGraphQL(updated), nil
}

// Me returns the caller's own profile, or nothing when anonymous. A
// session whose user row no longer exists counts as anonymous too.
func (r *queryResolver) Me(ctx context.Context) (*model.User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}

	u, err := r.UserSvc.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return mapUserToGraphQL(u), nil
}

func (r *queryResolver) Users(ctx context.Context) ([]*model.User, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := permission.Require(caller.Permissions, permission.Admin, permission.PermissionUpdate); err != nil {
		return nil, errors.Join(ErrForbidden, err)
	}

	users, err := r.UserSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.User, 0, len(users))
	for _, u := range users {
		out = append(out, mapUserToGraphQL(u))
	}

	return out, nil
}
