package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jobboard/jobboard-api/internal/auth"
	"github.com/jobboard/jobboard-api/internal/config"
	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// AuthService coordinates login flows and token issuance.
type AuthService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	tokenMgr  *auth.TokenManager
	throttle  *LoginThrottle
	logger    *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	CompanyRepo repository.CompanyRepository
	Counters    CounterStore
	Logger      *zap.Logger
}

// NewAuthService builds the service. The token manager is created from the
// configured signing secret so issuing and verifying share one key.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:     deps.UserRepo,
		companies: deps.CompanyRepo,
		tokenMgr:  auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		throttle:  NewLoginThrottle(deps.Counters, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow(), logger),
		logger:    logger,
	}
}

// LoginUser authenticates a user and returns a signed token.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, time.Time, error) {
	return s.login(ctx, domain.SubjectTypeUser, username, password, func() (string, error) {
		user, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		return user.PasswordHash, nil
	}, func() (string, time.Time, error) {
		return s.tokenMgr.IssueUserToken(username)
	})
}

// LoginCompany authenticates a company and returns a signed token.
func (s *AuthService) LoginCompany(ctx context.Context, handle, password string) (string, time.Time, error) {
	return s.login(ctx, domain.SubjectTypeCompany, handle, password, func() (string, error) {
		company, err := s.companies.GetByHandle(ctx, handle)
		if err != nil {
			return "", err
		}
		return company.PasswordHash, nil
	}, func() (string, time.Time, error) {
		return s.tokenMgr.IssueCompanyToken(handle)
	})
}

func (s *AuthService) login(
	ctx context.Context,
	subject domain.SubjectType,
	id, password string,
	lookupHash func() (string, error),
	issue func() (string, time.Time, error),
) (string, time.Time, error) {
	if !s.throttle.Allowed(ctx, subject, id) {
		s.logger.Info("login throttled", zap.String("subject", string(subject)), zap.String("id", id))
		return "", time.Time{}, apperrors.NewTooManyRequests(MsgTooManyLoginAttempts)
	}

	hash, err := lookupHash()
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, err
		}
		s.throttle.Fail(ctx, subject, id)
		return "", time.Time{}, apperrors.NewUnauthorized(MsgInvalidCredentials)
	}

	if err := auth.ComparePassword(hash, password); err != nil {
		s.throttle.Fail(ctx, subject, id)
		return "", time.Time{}, apperrors.NewUnauthorized(MsgInvalidCredentials)
	}

	s.throttle.Reset(ctx, subject, id)
	return issue()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
