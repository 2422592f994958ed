package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/config"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users: users,
		tokenMgr: auth.NewTokenManager(
			cfg.JWTSecret,
			cfg.JWTIssuer,
			cfg.JWTAudience,
			cfg.AccessTokenTTLMinutes,
		),
	}
}

// Login verifies credentials and issues a role-bearing token. The stored
// credential may be either hash scheme; verification dispatches on the
// presence of a stored salt.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("credenciales inválidas")
		}
		return "", time.Time{}, err
	}
	if !user.Active {
		return "", time.Time{}, apperrors.NewUnauthorized("usuario inactivo")
	}
	if !auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return "", time.Time{}, apperrors.NewUnauthorized("credenciales inválidas")
	}

	return s.tokenMgr.GenerateToken(user.ID, user.Name, user.Role)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
