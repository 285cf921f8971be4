package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/auth"
	"storefront-be/internal/logger"
	"storefront-be/internal/mail"
	"storefront-be/internal/permission"

	"go.uber.org/zap"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = time.Hour

type Service interface {
	Signup(ctx context.Context, email, name, password string) (string, *User, error)
	Signin(ctx context.Context, email, password string) (string, *User, error)
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirmPassword string) (string, *User, error)
	UpdatePermissions(ctx context.Context, userID uint, perms []permission.Permission) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type service struct {
	repo        Repository
	sessions    *auth.Sessions
	mailer      mail.Sender
	frontendURL string
}

func NewService(repo Repository, sessions *auth.Sessions, mailer mail.Sender, frontendURL string) Service {
	return &service{
		repo:        repo,
		sessions:    sessions,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

func (s *service) Signup(ctx context.Context, email, name, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(email)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, email, name, hashed, []permission.Permission{permission.User})
	if err != nil {
		log.Warn("failed to create user", zap.String("email", email), zap.Error(err))
		return "", nil, err
	}

	token, err := s.sessions.Issue(u.ID)
	if err != nil {
		log.Error("failed to issue session", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("signup completed",
		zap.Uint("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Signin(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(email)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("signin: user lookup failed", zap.String("email", email), zap.Error(err))
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		log.Warn("signin: password mismatch", zap.Uint("user_id", u.ID))
		return "", nil, ErrInvalidPassword
	}

	token, err := s.sessions.Issue(u.ID)
	return token, u, err
}

func (s *service) RequestReset(ctx context.Context, email string) error {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(email)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := auth.NewResetToken()
	if err != nil {
		log.Error("failed to generate reset token", zap.Error(err))
		return err
	}

	expiry := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, u.ID, token, expiry); err != nil {
		log.Error("failed to store reset token", zap.Uint("user_id", u.ID), zap.Error(err))
		return err
	}

	resetURL := fmt.Sprintf("%s/reset?resetToken=%s", s.frontendURL, token)
	if err := s.mailer.Send(ctx, u.Email, "Your Password Reset Token", mail.ResetBody(resetURL)); err != nil {
		log.Error("failed to send reset email", zap.Uint("user_id", u.ID), zap.Error(err))
		return err
	}

	log.Info("reset token issued", zap.Uint("user_id", u.ID))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, token, password, confirmPassword string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if password != confirmPassword {
		return "", nil, ErrPasswordMismatch
	}

	u, err := s.repo.FindByResetToken(ctx, token, time.Now())
	if err != nil {
		log.Warn("reset: token rejected", zap.Error(err))
		return "", nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	if err := s.repo.UpdatePassword(ctx, u.ID, hashed); err != nil {
		log.Error("failed to update password", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	sessionToken, err := s.sessions.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}

	log.Info("password reset completed", zap.Uint("user_id", u.ID))
	return sessionToken, u, nil
}

func (s *service) UpdatePermissions(ctx context.Context, userID uint, perms []permission.Permission) (*User, error) {
	for _, p := range perms {
		if !permission.Valid(p) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPermission, p)
		}
	}

	return s.repo.UpdatePermissions(ctx, userID, perms)
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
